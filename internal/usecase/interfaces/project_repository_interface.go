package interfaces

import (
	"context"

	"bidworks/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Projects are stored whole: categories and line items travel inside the
// project document, so a Save always writes the full aggregate.

type IProjectRepository interface {
	GetAll(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
