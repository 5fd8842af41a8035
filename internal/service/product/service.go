package product

import (
	"context"
	"strings"

	"shopmate-api/internal/domain"
	prodrepo "shopmate-api/internal/repository/product"
)

const (
	defaultPageSize          = 20
	defaultDescriptionLength = 200
)

type repo interface {
	List(ctx context.Context, page prodrepo.Page) ([]domain.Product, int, error)
	Search(ctx context.Context, query string, page prodrepo.Page) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int, page prodrepo.Page) ([]domain.Product, int, error)
	ListByDepartment(ctx context.Context, departmentID int, page prodrepo.Page) ([]domain.Product, int, error)
	CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	ListReviews(ctx context.Context, productID int) ([]domain.Review, error)
}

// Service serves the product catalog.
type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

// ListParams carries pagination and display options common to the catalog
// list endpoints. Page is 1-based.
type ListParams struct {
	Page              int
	Limit             int
	DescriptionLength int
}

func (p ListParams) normalize() (prodrepo.Page, int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.DescriptionLength < 1 {
		p.DescriptionLength = defaultDescriptionLength
	}
	return prodrepo.Page{Limit: p.Limit, Offset: (p.Page - 1) * p.Limit}, p.DescriptionLength
}

// ListResult is a page of products plus the unpaginated row count.
type ListResult struct {
	Products []domain.Product
	Total    int
}

func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	page, descLen := params.normalize()
	products, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &ListResult{Products: truncateDescriptions(products, descLen), Total: total}, nil
}

func (s *Service) Search(ctx context.Context, query string, params ListParams) (*ListResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Field: "query_string"}
	}
	page, descLen := params.normalize()
	products, total, err := s.repo.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return &ListResult{Products: truncateDescriptions(products, descLen), Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int, params ListParams) (*ListResult, error) {
	page, descLen := params.normalize()
	products, total, err := s.repo.ListByCategory(ctx, categoryID, page)
	if err != nil {
		return nil, err
	}
	return &ListResult{Products: truncateDescriptions(products, descLen), Total: total}, nil
}

func (s *Service) ListByDepartment(ctx context.Context, departmentID int, params ListParams) (*ListResult, error) {
	page, descLen := params.normalize()
	products, total, err := s.repo.ListByDepartment(ctx, departmentID, page)
	if err != nil {
		return nil, err
	}
	return &ListResult{Products: truncateDescriptions(products, descLen), Total: total}, nil
}

// AddReview attaches a customer's review to a product. The product must
// exist; ratings are clamped to the 1..5 star scale.
func (s *Service) AddReview(ctx context.Context, customerID, productID int, text string, rating int) (*domain.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &domain.ValidationError{Field: "review"}
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.CreateReview(ctx, domain.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Review:     text,
		Rating:     rating,
	})
}

func (s *Service) ListReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, productID)
}

// truncateDescriptions caps each description at limit runes, appending an
// ellipsis when trimmed.
func truncateDescriptions(products []domain.Product, limit int) []domain.Product {
	for i := range products {
		runes := []rune(products[i].Description)
		if len(runes) > limit {
			products[i].Description = string(runes[:limit]) + "..."
		}
	}
	return products
}
