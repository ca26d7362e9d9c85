package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidStatus       = errors.New("invalid project status")
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrItemIndexOutOfRange = errors.New("item index out of range")
	ErrInvalidLineItem     = errors.New("invalid line item")
)

// ProjectInfo carries the editable header fields of a project. Categories and
// line items are edited through the dedicated operations below so totals are
// always recomputed in one place.

type ProjectInfo struct {
	ClientID        string
	ClientName      string
	PropertyAddress string
	PropertyData    *entities.PropertyData
	Status          entities.ProjectStatus
	Notes           string
}

// IProjectUseCase exposes the estimate project operations.
//
// Every mutation loads the project, applies the edit, restores the totals
// invariants via Recalculate and saves the whole aggregate back.

type IProjectUseCase interface {
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Create(ctx context.Context, info ProjectInfo) (entities.Project, error)
	Update(ctx context.Context, id string, info ProjectInfo) (entities.Project, error)
	Delete(ctx context.Context, id string) error

	AddCategory(ctx context.Context, id string, t entities.CategoryType) (entities.Project, error)
	RemoveCategory(ctx context.Context, id string, t entities.CategoryType) (entities.Project, error)
	SetCategoryItems(ctx context.Context, id string, t entities.CategoryType, items []entities.LineItem) (entities.Project, error)

	AddItem(ctx context.Context, id string, t entities.CategoryType, item entities.LineItem) (entities.Project, error)
	UpdateItem(ctx context.Context, id string, t entities.CategoryType, index int, item entities.LineItem) (entities.Project, error)
	RemoveItem(ctx context.Context, id string, t entities.CategoryType, index int) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.GetAll(ctx)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Create(ctx context.Context, info ProjectInfo) (entities.Project, error) {
	if strings.TrimSpace(info.ClientName) == "" {
		return entities.Project{}, ErrInvalidClientName
	}
	status := info.Status
	if status == "" {
		status = entities.ProjectStatusQuote
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:              uuid.NewString(),
		ClientID:        strings.TrimSpace(info.ClientID),
		ClientName:      strings.TrimSpace(info.ClientName),
		PropertyAddress: strings.TrimSpace(info.PropertyAddress),
		PropertyData:    info.PropertyData,
		Status:          status,
		Categories:      []entities.Category{},
		Notes:           info.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.Recalculate()
	return u.repo.Save(ctx, p)
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, info ProjectInfo) (entities.Project, error) {
	if info.Status != "" && !info.Status.Valid() {
		return entities.Project{}, ErrInvalidStatus
	}

	return u.mutate(ctx, id, func(p *entities.Project) error {
		if strings.TrimSpace(info.ClientName) != "" {
			p.ClientName = strings.TrimSpace(info.ClientName)
		}
		p.ClientID = strings.TrimSpace(info.ClientID)
		p.PropertyAddress = strings.TrimSpace(info.PropertyAddress)
		if info.PropertyData != nil {
			p.PropertyData = info.PropertyData
		}
		if info.Status != "" {
			p.Status = info.Status
		}
		p.Notes = info.Notes
		return nil
	})
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProjectNotFound
	}
	return u.repo.Delete(ctx, id)
}

// AddCategory is idempotent: adding a type the project already has returns the
// project unchanged.
func (u *ProjectUseCase) AddCategory(ctx context.Context, id string, t entities.CategoryType) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}

	return u.mutate(ctx, id, func(p *entities.Project) error {
		if p.Category(t) != nil {
			return nil
		}
		p.Categories = append(p.Categories, entities.Category{Type: t, Items: []entities.LineItem{}})
		return nil
	})
}

func (u *ProjectUseCase) RemoveCategory(ctx context.Context, id string, t entities.CategoryType) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}

	return u.mutate(ctx, id, func(p *entities.Project) error {
		for i := range p.Categories {
			if p.Categories[i].Type == t {
				p.Categories = append(p.Categories[:i], p.Categories[i+1:]...)
				return nil
			}
		}
		return ErrCategoryNotFound
	})
}

// SetCategoryItems replaces a category's items wholesale, typically with a
// calculator breakdown. The category is created if the project lacks it.
func (u *ProjectUseCase) SetCategoryItems(ctx context.Context, id string, t entities.CategoryType, items []entities.LineItem) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}
	for i := range items {
		if strings.TrimSpace(items[i].Description) == "" {
			return entities.Project{}, ErrInvalidLineItem
		}
		items[i].Recalculate()
	}

	return u.mutate(ctx, id, func(p *entities.Project) error {
		if cat := p.Category(t); cat != nil {
			cat.Items = items
			return nil
		}
		p.Categories = append(p.Categories, entities.Category{Type: t, Items: items})
		return nil
	})
}

func (u *ProjectUseCase) AddItem(ctx context.Context, id string, t entities.CategoryType, item entities.LineItem) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}
	if strings.TrimSpace(item.Description) == "" {
		return entities.Project{}, ErrInvalidLineItem
	}
	item.Recalculate()

	return u.mutate(ctx, id, func(p *entities.Project) error {
		cat := p.Category(t)
		if cat == nil {
			p.Categories = append(p.Categories, entities.Category{Type: t, Items: []entities.LineItem{item}})
			return nil
		}
		cat.Items = append(cat.Items, item)
		return nil
	})
}

func (u *ProjectUseCase) UpdateItem(ctx context.Context, id string, t entities.CategoryType, index int, item entities.LineItem) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}
	if strings.TrimSpace(item.Description) == "" {
		return entities.Project{}, ErrInvalidLineItem
	}
	item.Recalculate()

	return u.mutate(ctx, id, func(p *entities.Project) error {
		cat := p.Category(t)
		if cat == nil {
			return ErrCategoryNotFound
		}
		if index < 0 || index >= len(cat.Items) {
			return ErrItemIndexOutOfRange
		}
		cat.Items[index] = item
		return nil
	})
}

func (u *ProjectUseCase) RemoveItem(ctx context.Context, id string, t entities.CategoryType, index int) (entities.Project, error) {
	if !t.Valid() {
		return entities.Project{}, ErrInvalidCategoryType
	}

	return u.mutate(ctx, id, func(p *entities.Project) error {
		cat := p.Category(t)
		if cat == nil {
			return ErrCategoryNotFound
		}
		if index < 0 || index >= len(cat.Items) {
			return ErrItemIndexOutOfRange
		}
		cat.Items = append(cat.Items[:index], cat.Items[index+1:]...)
		return nil
	})
}

// mutate is the shared load-edit-recalculate-save cycle behind every project
// mutation.
func (u *ProjectUseCase) mutate(ctx context.Context, id string, edit func(*entities.Project) error) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	if err := edit(&p); err != nil {
		return entities.Project{}, err
	}

	p.Recalculate()
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, p)
}
