package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAIDisabled           = errors.New("ai features are disabled in settings")
	ErrReviewNotFound       = errors.New("review session not found")
	ErrInvalidReviewID      = errors.New("invalid review session id")
	ErrNothingSelected      = errors.New("no items selected")
	ErrReviewCategoryGone   = errors.New("category not in draft")
	ErrReviewItemGone       = errors.New("item not in draft")
	ErrDraftEmpty           = errors.New("draft has no categories")
	ErrRegenerateSuperseded = errors.New("regeneration superseded by a newer request")
)

// ReviewItem is one draft line item plus its selection flag.

type ReviewItem struct {
	Item     entities.LineItem `json:"item"`
	Selected bool              `json:"selected"`
}

// ReviewCategory is one draft category under review. Selected follows the
// items: deselecting the category cascades down, selecting any item turns the
// category back on.

type ReviewCategory struct {
	Type       entities.CategoryType `json:"type"`
	Confidence entities.Confidence   `json:"confidence,omitempty"`
	Reasoning  string                `json:"reasoning,omitempty"`
	Selected   bool                  `json:"selected"`
	Items      []ReviewItem          `json:"items"`
	Subtotal   float64               `json:"subtotal"`
}

// ReviewSession holds an AI draft between generation and the contractor's
// accept/cancel decision. Sessions live only in memory: a draft is never
// persisted, only its accepted outcome is.

type ReviewSession struct {
	ID               string                    `json:"id"`
	ProjectID        string                    `json:"projectId"`
	PropertyAnalysis entities.PropertyAnalysis `json:"propertyAnalysis"`
	Categories       []ReviewCategory          `json:"categories"`
	CreatedAt        time.Time                 `json:"createdAt"`
	Generation       int                       `json:"-"`
	Request          interfaces.DraftRequest   `json:"-"`
}

// SelectedSubtotal sums the totals of selected items in selected categories.
func (s *ReviewSession) SelectedSubtotal() float64 {
	sum := 0.0
	for _, c := range s.Categories {
		if !c.Selected {
			continue
		}
		for _, it := range c.Items {
			if it.Selected {
				sum += it.Item.Total
			}
		}
	}
	return sum
}

// IDraftReviewUseCase drives the generate-review-accept flow for AI drafts.

type IDraftReviewUseCase interface {
	Start(ctx context.Context, projectID string, notes string, categories []entities.CategoryType) (ReviewSession, error)
	Get(sessionID string) (ReviewSession, error)
	ToggleCategory(sessionID string, t entities.CategoryType, selected bool) (ReviewSession, error)
	ToggleItem(sessionID string, t entities.CategoryType, index int, selected bool) (ReviewSession, error)
	UpdateItem(sessionID string, t entities.CategoryType, index int, item entities.LineItem) (ReviewSession, error)
	Regenerate(ctx context.Context, sessionID string) (ReviewSession, error)
	AcceptSelected(ctx context.Context, sessionID string) (entities.Project, error)
	AcceptAll(ctx context.Context, sessionID string) (entities.Project, error)
	Cancel(sessionID string) error
}

type DraftReviewUseCase struct {
	generator interfaces.IDraftGenerator
	projects  interfaces.IProjectRepository
	settings  interfaces.ISettingsRepository

	mu       sync.Mutex
	sessions map[string]*ReviewSession
}

var _ IDraftReviewUseCase = (*DraftReviewUseCase)(nil)

func NewDraftReviewUseCase(generator interfaces.IDraftGenerator, projects interfaces.IProjectRepository, settings interfaces.ISettingsRepository) *DraftReviewUseCase {
	return &DraftReviewUseCase{
		generator: generator,
		projects:  projects,
		settings:  settings,
		sessions:  make(map[string]*ReviewSession),
	}
}

// Start generates a draft for the project and opens a review session with
// everything selected.
func (u *DraftReviewUseCase) Start(ctx context.Context, projectID string, notes string, categories []entities.CategoryType) (ReviewSession, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ReviewSession{}, ErrInvalidProjectID
	}
	for _, t := range categories {
		if !t.Valid() {
			return ReviewSession{}, ErrInvalidCategoryType
		}
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return ReviewSession{}, err
	}
	if project.ID == "" {
		return ReviewSession{}, ErrProjectNotFound
	}

	req, err := u.buildDraftRequest(ctx, project, notes, categories)
	if err != nil {
		return ReviewSession{}, err
	}

	log.Printf("[review][usecase] generating draft project_id=%s categories=%d", projectID, len(categories))
	draft, err := u.generator.GenerateDraft(ctx, req)
	if err != nil {
		log.Printf("[review][usecase] draft generation failed project_id=%s err=%v", projectID, err)
		return ReviewSession{}, err
	}
	if len(draft.Categories) == 0 {
		return ReviewSession{}, ErrDraftEmpty
	}

	session := &ReviewSession{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		PropertyAnalysis: draft.PropertyAnalysis,
		Categories:       toReviewCategories(draft.Categories),
		CreatedAt:        time.Now().UTC(),
		Request:          req,
	}

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()

	log.Printf("[review][usecase] session opened session_id=%s project_id=%s categories=%d", session.ID, projectID, len(session.Categories))
	return *session, nil
}

func (u *DraftReviewUseCase) Get(sessionID string) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}
	return *s, nil
}

// ToggleCategory sets the category flag and cascades it to every item in the
// category.
func (u *DraftReviewUseCase) ToggleCategory(sessionID string, t entities.CategoryType, selected bool) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}

	cat := findReviewCategory(s, t)
	if cat == nil {
		return ReviewSession{}, ErrReviewCategoryGone
	}
	cat.Selected = selected
	for i := range cat.Items {
		cat.Items[i].Selected = selected
	}
	return *s, nil
}

// ToggleItem sets one item's flag. The category flag follows as the OR of
// its items: selecting an item re-selects its category, and deselecting the
// last selected item turns the category off.
func (u *DraftReviewUseCase) ToggleItem(sessionID string, t entities.CategoryType, index int, selected bool) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}

	cat := findReviewCategory(s, t)
	if cat == nil {
		return ReviewSession{}, ErrReviewCategoryGone
	}
	if index < 0 || index >= len(cat.Items) {
		return ReviewSession{}, ErrReviewItemGone
	}
	cat.Items[index].Selected = selected
	cat.Selected = false
	for i := range cat.Items {
		if cat.Items[i].Selected {
			cat.Selected = true
			break
		}
	}
	return *s, nil
}

// UpdateItem edits a draft line item before acceptance and recomputes its
// derived fields and the category subtotal.
func (u *DraftReviewUseCase) UpdateItem(sessionID string, t entities.CategoryType, index int, item entities.LineItem) (ReviewSession, error) {
	if strings.TrimSpace(item.Description) == "" {
		return ReviewSession{}, ErrInvalidLineItem
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}

	cat := findReviewCategory(s, t)
	if cat == nil {
		return ReviewSession{}, ErrReviewCategoryGone
	}
	if index < 0 || index >= len(cat.Items) {
		return ReviewSession{}, ErrReviewItemGone
	}

	item.Recalculate()
	cat.Items[index].Item = item
	recomputeReviewSubtotal(cat)
	return *s, nil
}

// Regenerate asks the generator for a fresh draft using the session's
// original request. Only the newest pending regeneration wins: if another
// Regenerate completed while this one was in flight, its result is discarded.
func (u *DraftReviewUseCase) Regenerate(ctx context.Context, sessionID string) (ReviewSession, error) {
	u.mu.Lock()
	s, err := u.lookup(sessionID)
	if err != nil {
		u.mu.Unlock()
		return ReviewSession{}, err
	}
	s.Generation++
	generation := s.Generation
	req := s.Request
	u.mu.Unlock()

	log.Printf("[review][usecase] regenerating session_id=%s generation=%d", sessionID, generation)
	draft, err := u.generator.GenerateDraft(ctx, req)
	if err != nil {
		return ReviewSession{}, err
	}
	if len(draft.Categories) == 0 {
		return ReviewSession{}, ErrDraftEmpty
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err = u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}
	if s.Generation != generation {
		log.Printf("[review][usecase] regeneration superseded session_id=%s generation=%d current=%d", sessionID, generation, s.Generation)
		return ReviewSession{}, ErrRegenerateSuperseded
	}

	s.PropertyAnalysis = draft.PropertyAnalysis
	s.Categories = toReviewCategories(draft.Categories)
	return *s, nil
}

// AcceptSelected commits the selected items of selected categories into the
// project. Committed categories replace any existing category of the same
// type wholesale; categories whose selection leaves them empty are dropped.
func (u *DraftReviewUseCase) AcceptSelected(ctx context.Context, sessionID string) (entities.Project, error) {
	return u.accept(ctx, sessionID, true)
}

// AcceptAll commits the whole draft regardless of selection state, including
// any edits made during review.
func (u *DraftReviewUseCase) AcceptAll(ctx context.Context, sessionID string) (entities.Project, error) {
	return u.accept(ctx, sessionID, false)
}

func (u *DraftReviewUseCase) accept(ctx context.Context, sessionID string, selectedOnly bool) (entities.Project, error) {
	u.mu.Lock()
	s, err := u.lookup(sessionID)
	if err != nil {
		u.mu.Unlock()
		return entities.Project{}, err
	}
	accepted := collectAccepted(s, selectedOnly)
	projectID := s.ProjectID
	u.mu.Unlock()

	if len(accepted) == 0 {
		return entities.Project{}, ErrNothingSelected
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	for _, cat := range accepted {
		if existing := project.Category(cat.Type); existing != nil {
			*existing = cat
		} else {
			project.Categories = append(project.Categories, cat)
		}
	}

	project.Recalculate()
	project.UpdatedAt = time.Now().UTC()
	saved, err := u.projects.Save(ctx, project)
	if err != nil {
		return entities.Project{}, err
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	log.Printf("[review][usecase] draft accepted session_id=%s project_id=%s categories=%d subtotal=%.2f", sessionID, projectID, len(accepted), saved.Subtotal)
	return saved, nil
}

func (u *DraftReviewUseCase) Cancel(sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, err := u.lookup(sessionID); err != nil {
		return err
	}
	delete(u.sessions, sessionID)
	return nil
}

func (u *DraftReviewUseCase) lookup(sessionID string) (*ReviewSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidReviewID
	}
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrReviewNotFound
	}
	return s, nil
}

func (u *DraftReviewUseCase) buildDraftRequest(ctx context.Context, project entities.Project, notes string, categories []entities.CategoryType) (interfaces.DraftRequest, error) {
	settings, found, err := u.settings.GetSettings(ctx)
	if err != nil {
		return interfaces.DraftRequest{}, err
	}
	if !found {
		settings = entities.DefaultSettings()
	}
	if !settings.AISettings.Enabled {
		return interfaces.DraftRequest{}, ErrAIDisabled
	}

	pricing, found, err := u.settings.GetPricing(ctx)
	if err != nil {
		return interfaces.DraftRequest{}, err
	}
	if !found {
		pricing = entities.DefaultPricing()
	}

	return interfaces.DraftRequest{
		Address:      project.PropertyAddress,
		PropertyData: project.PropertyData,
		Notes:        notes,
		Categories:   categories,
		Pricing:      pricing,
		AISettings:   settings.AISettings,
	}, nil
}

func toReviewCategories(cats []entities.Category) []ReviewCategory {
	out := make([]ReviewCategory, 0, len(cats))
	for _, c := range cats {
		c.Recalculate()
		rc := ReviewCategory{
			Type:       c.Type,
			Confidence: c.Confidence,
			Reasoning:  c.Reasoning,
			Selected:   true,
			Subtotal:   c.Subtotal,
			Items:      make([]ReviewItem, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			rc.Items = append(rc.Items, ReviewItem{Item: it, Selected: true})
		}
		out = append(out, rc)
	}
	return out
}

func findReviewCategory(s *ReviewSession, t entities.CategoryType) *ReviewCategory {
	for i := range s.Categories {
		if s.Categories[i].Type == t {
			return &s.Categories[i]
		}
	}
	return nil
}

func recomputeReviewSubtotal(c *ReviewCategory) {
	sum := 0.0
	for i := range c.Items {
		sum += c.Items[i].Item.Total
	}
	c.Subtotal = sum
}

// collectAccepted turns review categories into plain categories, filtered by
// selection when selectedOnly is set. Confidence and reasoning stay behind:
// they are review metadata, not estimate content.
func collectAccepted(s *ReviewSession, selectedOnly bool) []entities.Category {
	var out []entities.Category
	for _, rc := range s.Categories {
		if selectedOnly && !rc.Selected {
			continue
		}
		cat := entities.Category{Type: rc.Type}
		for _, it := range rc.Items {
			if selectedOnly && !it.Selected {
				continue
			}
			cat.Items = append(cat.Items, it.Item)
		}
		if len(cat.Items) == 0 {
			continue
		}
		cat.Recalculate()
		out = append(out, cat)
	}
	return out
}
