package master

import (
	"context"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/master/category"
	"github.com/constrack/backoffice-backend-go/internal/domain/master/department"
)

// MasterService covers the back office's reference data: departments for
// employees and categories for expenses.
type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Expense category operations
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (category.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]category.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	categoryRepo   category.CategoryRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	categoryRepo category.CategoryRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		categoryRepo:   categoryRepo,
	}
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
}

func toCategoryResponse(c category.Category) category.CategoryResponse {
	return category.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dept), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== EXPENSE CATEGORY OPERATIONS ====================

func (s *masterServiceImpl) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}

	created, err := s.categoryRepo.Create(ctx, category.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return category.CategoryResponse{}, err
	}

	return toCategoryResponse(created), nil
}

func (s *masterServiceImpl) GetCategory(ctx context.Context, id string) (category.CategoryResponse, error) {
	cat, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return category.CategoryResponse{}, err
	}
	return toCategoryResponse(cat), nil
}

func (s *masterServiceImpl) ListCategories(ctx context.Context) ([]category.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}

	responses := make([]category.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, toCategoryResponse(cat))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.categoryRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}
