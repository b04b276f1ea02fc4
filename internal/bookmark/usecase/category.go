package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookmark-manager/internal/bookmark"
	repo "bookmark-manager/internal/bookmark/repository"
	"bookmark-manager/internal/model"
)

// ListCategories returns every category with its sub-categories attached.
func (uc *implUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories ListCategories: %v", err)
		return nil, err
	}
	subs, err := uc.repo.ListSubCategories(ctx, repo.ListSubCategoriesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories ListSubCategories: %v", err)
		return nil, err
	}

	byParent := make(map[string][]model.SubCategory, len(cats))
	for _, s := range subs {
		byParent[s.ParentID] = append(byParent[s.ParentID], s)
	}
	for i := range cats {
		cats[i].SubCategories = byParent[cats[i].ID]
		if cats[i].SubCategories == nil {
			cats[i].SubCategories = []model.SubCategory{}
		}
	}
	return cats, nil
}

func (uc *implUseCase) CreateCategory(ctx context.Context, input bookmark.CreateCategoryInput) (model.Category, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return model.Category{}, err
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	} else {
		existing, err := uc.repo.ListCategories(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateCategory ListCategories: %v", err)
			return model.Category{}, err
		}
		position = len(existing)
	}

	c, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		ID:       uuid.NewString(),
		Name:     name,
		Position: position,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory CreateCategory: %v", err)
		return model.Category{}, err
	}
	c.SubCategories = []model.SubCategory{}
	return c, nil
}

func (uc *implUseCase) UpdateCategory(ctx context.Context, input bookmark.UpdateCategoryInput) (model.Category, error) {
	current, err := uc.getCategory(ctx, input.ID)
	if err != nil {
		return model.Category{}, err
	}

	opt := repo.UpdateCategoryOptions{ID: current.ID, Name: current.Name, Position: current.Position}
	if input.Name != nil {
		if opt.Name, err = normalizeName(*input.Name); err != nil {
			return model.Category{}, err
		}
	}
	if input.Position != nil {
		opt.Position = *input.Position
	}

	c, err := uc.repo.UpdateCategory(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory UpdateCategory: %v", err)
		return model.Category{}, err
	}
	if c.ID == "" {
		return model.Category{}, bookmark.ErrCategoryNotFound
	}

	subs, err := uc.repo.ListSubCategories(ctx, repo.ListSubCategoriesOptions{ParentID: c.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory ListSubCategories: %v", err)
		return model.Category{}, err
	}
	c.SubCategories = subs
	return c, nil
}

// DeleteCategory removes the category with its sub-categories and bookmarks.
func (uc *implUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.getCategory(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory DeleteCategory: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) CreateSubCategory(ctx context.Context, input bookmark.CreateSubCategoryInput) (model.SubCategory, error) {
	parent, err := uc.getCategory(ctx, input.CategoryID)
	if err != nil {
		return model.SubCategory{}, err
	}
	name, err := normalizeName(input.Name)
	if err != nil {
		return model.SubCategory{}, err
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	} else {
		siblings, err := uc.repo.ListSubCategories(ctx, repo.ListSubCategoriesOptions{ParentID: parent.ID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateSubCategory ListSubCategories: %v", err)
			return model.SubCategory{}, err
		}
		position = len(siblings)
	}

	s, err := uc.repo.CreateSubCategory(ctx, repo.CreateSubCategoryOptions{
		ID:       uuid.NewString(),
		ParentID: parent.ID,
		Name:     name,
		Position: position,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSubCategory CreateSubCategory: %v", err)
		return model.SubCategory{}, err
	}
	return s, nil
}

func (uc *implUseCase) UpdateSubCategory(ctx context.Context, input bookmark.UpdateSubCategoryInput) (model.SubCategory, error) {
	current, err := uc.getSubCategory(ctx, input.ID)
	if err != nil {
		return model.SubCategory{}, err
	}

	opt := repo.UpdateSubCategoryOptions{
		ID:       current.ID,
		ParentID: current.ParentID,
		Name:     current.Name,
		Position: current.Position,
	}
	if input.Name != nil {
		if opt.Name, err = normalizeName(*input.Name); err != nil {
			return model.SubCategory{}, err
		}
	}
	if input.ParentID != nil && *input.ParentID != current.ParentID {
		parent, err := uc.getCategory(ctx, *input.ParentID)
		if err != nil {
			return model.SubCategory{}, err
		}
		opt.ParentID = parent.ID
	}
	if input.Position != nil {
		opt.Position = *input.Position
	}

	s, err := uc.repo.UpdateSubCategory(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSubCategory UpdateSubCategory: %v", err)
		return model.SubCategory{}, err
	}
	if s.ID == "" {
		return model.SubCategory{}, bookmark.ErrSubCategoryNotFound
	}
	return s, nil
}

// DeleteSubCategory removes the sub-category and its bookmarks.
func (uc *implUseCase) DeleteSubCategory(ctx context.Context, id string) error {
	if _, err := uc.getSubCategory(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteSubCategory(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSubCategory DeleteSubCategory: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getCategory(ctx context.Context, id string) (model.Category, error) {
	if id == "" {
		return model.Category{}, bookmark.ErrCategoryNotFound
	}
	c, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getCategory GetOneCategory: %v", err)
		return model.Category{}, err
	}
	if c.ID == "" {
		return model.Category{}, bookmark.ErrCategoryNotFound
	}
	return c, nil
}

func (uc *implUseCase) getSubCategory(ctx context.Context, id string) (model.SubCategory, error) {
	if id == "" {
		return model.SubCategory{}, bookmark.ErrSubCategoryNotFound
	}
	s, err := uc.repo.GetOneSubCategory(ctx, repo.GetOneSubCategoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getSubCategory GetOneSubCategory: %v", err)
		return model.SubCategory{}, err
	}
	if s.ID == "" {
		return model.SubCategory{}, bookmark.ErrSubCategoryNotFound
	}
	return s, nil
}
