package usecase

import (
	"errors"
	"fmt"
	"strings"

	"bidworks/internal/domain/entities"
)

var ErrInvalidModification = errors.New("invalid modification")

// ApplyModification applies one structured estimate edit to the project in
// place. On error the project is left unchanged; the caller decides whether
// to surface the error or feed it back to the chat agent. Reason is ignored
// here: it belongs to the transcript, never to the project.
func ApplyModification(p *entities.Project, instr entities.ModificationInstruction) error {
	if !instr.Action.Valid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidModification, instr.Action)
	}
	if !instr.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategoryType, instr.Category)
	}

	switch instr.Action {
	case entities.ActionAddCategory:
		if p.Category(instr.Category) == nil {
			p.Categories = append(p.Categories, entities.Category{Type: instr.Category, Items: []entities.LineItem{}})
		}
		return nil

	case entities.ActionRemoveCategory:
		for i := range p.Categories {
			if p.Categories[i].Type == instr.Category {
				p.Categories = append(p.Categories[:i], p.Categories[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, instr.Category)

	case entities.ActionAddItem:
		if instr.Item == nil || strings.TrimSpace(instr.Item.Description) == "" {
			return fmt.Errorf("%w: add_item requires an item with a description", ErrInvalidModification)
		}
		item := *instr.Item
		item.Recalculate()
		cat := p.Category(instr.Category)
		if cat == nil {
			p.Categories = append(p.Categories, entities.Category{Type: instr.Category, Items: []entities.LineItem{item}})
			return nil
		}
		cat.Items = append(cat.Items, item)
		return nil

	case entities.ActionUpdateItem:
		if instr.ItemIndex == nil {
			return fmt.Errorf("%w: update_item requires itemIndex", ErrInvalidModification)
		}
		if instr.Item == nil || strings.TrimSpace(instr.Item.Description) == "" {
			return fmt.Errorf("%w: update_item requires an item with a description", ErrInvalidModification)
		}
		cat := p.Category(instr.Category)
		if cat == nil {
			return fmt.Errorf("%w: %q", ErrCategoryNotFound, instr.Category)
		}
		idx := *instr.ItemIndex
		if idx < 0 || idx >= len(cat.Items) {
			return fmt.Errorf("%w: index %d, category has %d items", ErrItemIndexOutOfRange, idx, len(cat.Items))
		}
		item := *instr.Item
		item.Recalculate()
		cat.Items[idx] = item
		return nil

	case entities.ActionRemoveItem:
		if instr.ItemIndex == nil {
			return fmt.Errorf("%w: remove_item requires itemIndex", ErrInvalidModification)
		}
		cat := p.Category(instr.Category)
		if cat == nil {
			return fmt.Errorf("%w: %q", ErrCategoryNotFound, instr.Category)
		}
		idx := *instr.ItemIndex
		if idx < 0 || idx >= len(cat.Items) {
			return fmt.Errorf("%w: index %d, category has %d items", ErrItemIndexOutOfRange, idx, len(cat.Items))
		}
		cat.Items = append(cat.Items[:idx], cat.Items[idx+1:]...)
		return nil
	}

	return fmt.Errorf("%w: unhandled action %q", ErrInvalidModification, instr.Action)
}
