package httpserver

import (
	"context"
	"io"
	"log"

	"shopmate-api/internal/domain"
	custrepo "shopmate-api/internal/repository/customer"
	cartsvc "shopmate-api/internal/service/cart"
	custsvc "shopmate-api/internal/service/customer"
	ordersvc "shopmate-api/internal/service/order"
	paysvc "shopmate-api/internal/service/payment"
	prodsvc "shopmate-api/internal/service/product"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// testDeps returns a Deps with every service stubbed; tests overwrite the
// fields they exercise.
func testDeps() Deps {
	return Deps{
		Customers:   &stubCustomerService{},
		Products:    &stubProductService{},
		Categories:  &stubCategoryService{},
		Departments: &stubDepartmentService{},
		Attributes:  &stubAttributeService{},
		Carts:       &stubCartService{},
		Orders:      &stubOrderService{},
		Payments:    &stubPaymentService{},
		Shipping:    &stubShippingService{},
		Taxes:       &stubTaxService{},
	}
}

type stubCustomerService struct {
	customer  *domain.Customer
	auth      *custsvc.AuthResult
	signupErr error
	loginErr  error
	lookupErr error
	getErr    error
	updateErr error
}

func (s *stubCustomerService) Signup(_ context.Context, _, _, _ string) (*custsvc.AuthResult, error) {
	return s.auth, s.signupErr
}

func (s *stubCustomerService) Login(_ context.Context, _, _ string) (*custsvc.AuthResult, error) {
	return s.auth, s.loginErr
}

func (s *stubCustomerService) LookupByToken(_ context.Context, _ string) (*domain.Customer, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.customer, nil
}

func (s *stubCustomerService) Get(_ context.Context, _ int) (*domain.Customer, error) {
	return s.customer, s.getErr
}

func (s *stubCustomerService) UpdateProfile(_ context.Context, _ int, _ custrepo.ProfileUpdate) (*domain.Customer, error) {
	return s.customer, s.updateErr
}

func (s *stubCustomerService) UpdateAddress(_ context.Context, _ int, _ custrepo.AddressUpdate) (*domain.Customer, error) {
	return s.customer, s.updateErr
}

func (s *stubCustomerService) UpdateCreditCard(_ context.Context, _ int, _ string) (*domain.Customer, error) {
	return s.customer, s.updateErr
}

type stubProductService struct {
	result    *prodsvc.ListResult
	product   *domain.Product
	reviews   []domain.Review
	review    *domain.Review
	err       error
	reviewErr error
}

func (s *stubProductService) List(_ context.Context, _ prodsvc.ListParams) (*prodsvc.ListResult, error) {
	return s.result, s.err
}

func (s *stubProductService) Search(_ context.Context, _ string, _ prodsvc.ListParams) (*prodsvc.ListResult, error) {
	return s.result, s.err
}

func (s *stubProductService) Get(_ context.Context, _ int) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) ListByCategory(_ context.Context, _ int, _ prodsvc.ListParams) (*prodsvc.ListResult, error) {
	return s.result, s.err
}

func (s *stubProductService) ListByDepartment(_ context.Context, _ int, _ prodsvc.ListParams) (*prodsvc.ListResult, error) {
	return s.result, s.err
}

func (s *stubProductService) AddReview(_ context.Context, _, _ int, _ string, _ int) (*domain.Review, error) {
	return s.review, s.reviewErr
}

func (s *stubProductService) ListReviews(_ context.Context, _ int) ([]domain.Review, error) {
	return s.reviews, s.err
}

type stubCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Get(_ context.Context, _ int) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) ListByDepartment(_ context.Context, _ int) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) ListByProduct(_ context.Context, _ int) ([]domain.Category, error) {
	return s.categories, s.err
}

type stubDepartmentService struct {
	departments []domain.Department
	department  *domain.Department
	err         error
}

func (s *stubDepartmentService) List(_ context.Context) ([]domain.Department, error) {
	return s.departments, s.err
}

func (s *stubDepartmentService) Get(_ context.Context, _ int) (*domain.Department, error) {
	return s.department, s.err
}

type stubAttributeService struct {
	attributes []domain.Attribute
	attribute  *domain.Attribute
	values     []domain.AttributeValue
	productAtt []domain.ProductAttribute
	err        error
}

func (s *stubAttributeService) List(_ context.Context) ([]domain.Attribute, error) {
	return s.attributes, s.err
}

func (s *stubAttributeService) Get(_ context.Context, _ int) (*domain.Attribute, error) {
	return s.attribute, s.err
}

func (s *stubAttributeService) ListValues(_ context.Context, _ int) ([]domain.AttributeValue, error) {
	return s.values, s.err
}

func (s *stubAttributeService) ListByProduct(_ context.Context, _ int) ([]domain.ProductAttribute, error) {
	return s.productAtt, s.err
}

type stubCartService struct {
	id        string
	lines     []domain.CartLine
	addErr    error
	listErr   error
	updateErr error
	removeErr error
	emptyErr  error
}

func (s *stubCartService) GenerateID() string {
	return s.id
}

func (s *stubCartService) AddItem(_ context.Context, _ cartsvc.AddItemInput) ([]domain.CartLine, error) {
	return s.lines, s.addErr
}

func (s *stubCartService) List(_ context.Context, _ string) ([]domain.CartLine, error) {
	return s.lines, s.listErr
}

func (s *stubCartService) UpdateItem(_ context.Context, _, _ int) ([]domain.CartLine, error) {
	return s.lines, s.updateErr
}

func (s *stubCartService) RemoveItem(_ context.Context, _ int) error {
	return s.removeErr
}

func (s *stubCartService) Empty(_ context.Context, _ string) error {
	return s.emptyErr
}

type stubOrderService struct {
	orderID   int
	details   []domain.OrderDetail
	summary   *domain.OrderSummary
	summaries []domain.OrderSummary
	createErr error
	getErr    error
	listErr   error
}

func (s *stubOrderService) Create(_ context.Context, _ int, _ ordersvc.CreateInput) (int, error) {
	return s.orderID, s.createErr
}

func (s *stubOrderService) Get(_ context.Context, _, _ int) ([]domain.OrderDetail, error) {
	return s.details, s.getErr
}

func (s *stubOrderService) GetSummary(_ context.Context, _, _ int) (*domain.OrderSummary, error) {
	return s.summary, s.getErr
}

func (s *stubOrderService) ListByCustomer(_ context.Context, _ int) ([]domain.OrderSummary, error) {
	return s.summaries, s.listErr
}

type stubPaymentService struct {
	result *paysvc.Result
	err    error
	calls  int
}

func (s *stubPaymentService) Settle(_ context.Context, _ int, _ paysvc.ChargeInput) (*paysvc.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubShippingService struct {
	regions []domain.ShippingRegion
	options []domain.Shipping
	err     error
}

func (s *stubShippingService) ListRegions(_ context.Context) ([]domain.ShippingRegion, error) {
	return s.regions, s.err
}

func (s *stubShippingService) ListByRegion(_ context.Context, _ int) ([]domain.Shipping, error) {
	return s.options, s.err
}

type stubTaxService struct {
	taxes []domain.Tax
	tax   *domain.Tax
	err   error
}

func (s *stubTaxService) List(_ context.Context) ([]domain.Tax, error) {
	return s.taxes, s.err
}

func (s *stubTaxService) Get(_ context.Context, _ int) (*domain.Tax, error) {
	return s.tax, s.err
}
