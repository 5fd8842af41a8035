package httpserver

import (
	"context"
	"errors"
	"log"

	"shopmate-api/internal/domain"
	custrepo "shopmate-api/internal/repository/customer"
	cartsvc "shopmate-api/internal/service/cart"
	custsvc "shopmate-api/internal/service/customer"
	ordersvc "shopmate-api/internal/service/order"
	paysvc "shopmate-api/internal/service/payment"
	prodsvc "shopmate-api/internal/service/product"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerService interface {
	Signup(ctx context.Context, name, email, password string) (*custsvc.AuthResult, error)
	Login(ctx context.Context, email, password string) (*custsvc.AuthResult, error)
	LookupByToken(ctx context.Context, token string) (*domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int, in custrepo.ProfileUpdate) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, id int, in custrepo.AddressUpdate) (*domain.Customer, error)
	UpdateCreditCard(ctx context.Context, id int, creditCard string) (*domain.Customer, error)
}

type ProductService interface {
	List(ctx context.Context, params prodsvc.ListParams) (*prodsvc.ListResult, error)
	Search(ctx context.Context, query string, params prodsvc.ListParams) (*prodsvc.ListResult, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int, params prodsvc.ListParams) (*prodsvc.ListResult, error)
	ListByDepartment(ctx context.Context, departmentID int, params prodsvc.ListParams) (*prodsvc.ListResult, error)
	AddReview(ctx context.Context, customerID, productID int, text string, rating int) (*domain.Review, error)
	ListReviews(ctx context.Context, productID int) ([]domain.Review, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]domain.Category, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.Category, error)
}

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id int) (*domain.Department, error)
}

type AttributeService interface {
	List(ctx context.Context) ([]domain.Attribute, error)
	Get(ctx context.Context, id int) (*domain.Attribute, error)
	ListValues(ctx context.Context, attributeID int) ([]domain.AttributeValue, error)
	ListByProduct(ctx context.Context, productID int) ([]domain.ProductAttribute, error)
}

type CartService interface {
	GenerateID() string
	AddItem(ctx context.Context, in cartsvc.AddItemInput) ([]domain.CartLine, error)
	List(ctx context.Context, cartID string) ([]domain.CartLine, error)
	UpdateItem(ctx context.Context, itemID, quantity int) ([]domain.CartLine, error)
	RemoveItem(ctx context.Context, itemID int) error
	Empty(ctx context.Context, cartID string) error
}

type OrderService interface {
	Create(ctx context.Context, customerID int, in ordersvc.CreateInput) (int, error)
	Get(ctx context.Context, customerID, orderID int) ([]domain.OrderDetail, error)
	GetSummary(ctx context.Context, customerID, orderID int) (*domain.OrderSummary, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.OrderSummary, error)
}

type PaymentService interface {
	Settle(ctx context.Context, customerID int, in paysvc.ChargeInput) (*paysvc.Result, error)
}

type ShippingService interface {
	ListRegions(ctx context.Context) ([]domain.ShippingRegion, error)
	ListByRegion(ctx context.Context, regionID int) ([]domain.Shipping, error)
}

type TaxService interface {
	List(ctx context.Context) ([]domain.Tax, error)
	Get(ctx context.Context, id int) (*domain.Tax, error)
}

// Deps collects the services the router exposes.
type Deps struct {
	Customers   CustomerService
	Products    ProductService
	Categories  CategoryService
	Departments DepartmentService
	Attributes  AttributeService
	Carts       CartService
	Orders      OrderService
	Payments    PaymentService
	Shipping    ShippingService
	Taxes       TaxService
}

func (d Deps) validate() error {
	if d.Customers == nil || d.Products == nil || d.Categories == nil ||
		d.Departments == nil || d.Attributes == nil || d.Carts == nil ||
		d.Orders == nil || d.Payments == nil || d.Shipping == nil || d.Taxes == nil {
		return errors.New("httpserver: all Deps services must be set")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, authHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := requireAuth(deps.Customers)

	ch := &customerHandler{svc: deps.Customers, logger: logger}
	router.POST("/customers", ch.register)
	router.POST("/customers/login", ch.login)
	customer := router.Group("/customer", auth)
	{
		customer.GET("", ch.profile)
		customer.PUT("", ch.updateProfile)
		customer.PUT("/address", ch.updateAddress)
		customer.PUT("/creditCard", ch.updateCreditCard)
	}

	dh := &departmentHandler{svc: deps.Departments, logger: logger}
	router.GET("/departments", dh.list)
	router.GET("/departments/:department_id", dh.get)

	cath := &categoryHandler{svc: deps.Categories, logger: logger}
	router.GET("/categories", cath.list)
	router.GET("/categories/:category_id", cath.get)
	router.GET("/categories/inDepartment/:department_id", cath.listInDepartment)
	router.GET("/categories/inProduct/:product_id", cath.listInProduct)

	ah := &attributeHandler{svc: deps.Attributes, logger: logger}
	router.GET("/attributes", ah.list)
	router.GET("/attributes/:attribute_id", ah.get)
	router.GET("/attributes/values/:attribute_id", ah.listValues)
	router.GET("/attributes/inProduct/:product_id", ah.listInProduct)

	ph := &productHandler{svc: deps.Products, logger: logger}
	router.GET("/products", ph.list)
	router.GET("/products/search", ph.search)
	router.GET("/products/:product_id", ph.get)
	router.GET("/products/inCategory/:category_id", ph.listInCategory)
	router.GET("/products/inDepartment/:department_id", ph.listInDepartment)
	router.GET("/products/:product_id/reviews", ph.listReviews)
	router.POST("/products/:product_id/reviews", auth, ph.createReview)

	carth := &cartHandler{svc: deps.Carts, logger: logger}
	router.GET("/shoppingcart/generateUniqueId", carth.generateID)
	router.POST("/shoppingcart/add", carth.addItem)
	router.GET("/shoppingcart/:cart_id", carth.list)
	router.PUT("/shoppingcart/update/:item_id", carth.updateItem)
	router.DELETE("/shoppingcart/empty/:cart_id", carth.empty)
	router.DELETE("/shoppingcart/removeProduct/:item_id", carth.removeItem)

	oh := &orderHandler{svc: deps.Orders, logger: logger}
	orders := router.Group("/orders", auth)
	{
		orders.POST("", oh.create)
		orders.GET("/inCustomer", oh.listMine)
		orders.GET("/shortDetail/:order_id", oh.shortDetail)
		orders.GET("/:order_id", oh.detail)
	}

	payh := &paymentHandler{svc: deps.Payments, logger: logger}
	router.POST("/stripe/charge", auth, payh.charge)

	sh := &shippingHandler{svc: deps.Shipping, logger: logger}
	router.GET("/shipping/regions", sh.listRegions)
	router.GET("/shipping/regions/:shipping_region_id", sh.listInRegion)

	th := &taxHandler{svc: deps.Taxes, logger: logger}
	router.GET("/tax", th.list)
	router.GET("/tax/:tax_id", th.get)

	return router, nil
}
