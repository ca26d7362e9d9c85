package usecase

import (
	"context"
	"fmt"
	"strings"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"
)

// IReportUseCase renders a client-facing estimate document for a project.

type IReportUseCase interface {
	EstimateDocument(ctx context.Context, projectID string) (string, error)
}

type ReportUseCase struct {
	projects interfaces.IProjectRepository
	settings interfaces.ISettingsRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(projects interfaces.IProjectRepository, settings interfaces.ISettingsRepository) *ReportUseCase {
	return &ReportUseCase{projects: projects, settings: settings}
}

// EstimateDocument renders the project as a plain-text estimate: company
// letterhead, per-category line items with quantities and labor, then
// subtotal, tax and total.
func (u *ReportUseCase) EstimateDocument(ctx context.Context, projectID string) (string, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", ErrProjectNotFound
	}

	company, found, err := u.settings.GetCompanyInfo(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		company = entities.CompanyInfo{}
	}

	var b strings.Builder
	if company.Name != "" {
		fmt.Fprintf(&b, "%s\n", company.Name)
		if company.Address != "" {
			fmt.Fprintf(&b, "%s\n", company.Address)
		}
		contact := joinNonEmpty(" | ", company.Phone, company.Email)
		if contact != "" {
			fmt.Fprintf(&b, "%s\n", contact)
		}
		if company.License != "" {
			fmt.Fprintf(&b, "License: %s\n", company.License)
		}
		b.WriteString("\n")
	}

	b.WriteString("ESTIMATE\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "Client:   %s\n", p.ClientName)
	if p.PropertyAddress != "" {
		fmt.Fprintf(&b, "Property: %s\n", p.PropertyAddress)
	}
	fmt.Fprintf(&b, "Date:     %s\n", p.UpdatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Status:   %s\n\n", p.Status)

	for _, cat := range p.Categories {
		fmt.Fprintf(&b, "%s\n", strings.ToUpper(string(cat.Type)))
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, it := range cat.Items {
			fmt.Fprintf(&b, "  %-42s %13s\n", it.Description, money(it.Total))
			detail := itemDetail(it)
			if detail != "" {
				fmt.Fprintf(&b, "    %s\n", detail)
			}
		}
		fmt.Fprintf(&b, "  %-42s %13s\n\n", "Subtotal", money(cat.Subtotal))
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "  %-42s %13s\n", "Subtotal", money(p.Subtotal))
	fmt.Fprintf(&b, "  %-42s %13s\n", fmt.Sprintf("Tax (%.0f%%)", entities.TaxRate*100), money(p.Tax))
	fmt.Fprintf(&b, "  %-42s %13s\n", "TOTAL", money(p.Total))

	if p.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", p.Notes)
	}
	return b.String(), nil
}

func itemDetail(it entities.LineItem) string {
	parts := []string{}
	if it.Quantity > 0 && it.UnitPrice > 0 {
		parts = append(parts, fmt.Sprintf("%.4g %s @ %s", it.Quantity, it.Unit, money(it.UnitPrice)))
	}
	if it.LaborHours > 0 {
		parts = append(parts, fmt.Sprintf("%.1f labor hrs @ %s/hr", it.LaborHours, money(it.LaborRate)))
	}
	return strings.Join(parts, ", ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
