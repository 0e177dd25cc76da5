package category

import "errors"

var (
	ErrCategoryNotFound   = errors.New("expense category not found")
	ErrCategoryNameExists = errors.New("expense category with this name already exists")
	ErrCategoryInUse      = errors.New("expense category is referenced by expenses")
)
