package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"entrega/internal/port"
)

const exportPageSize = 500

// CatalogueExporter builds an xlsx workbook of the marketplace catalogue for
// back-office use. One sheet per entity kind.
type CatalogueExporter struct {
	businessRepo port.BusinessRepository
	menuRepo     port.MenuRepository
	offerRepo    port.OfferRepository
}

// NewCatalogueExporter creates a new CatalogueExporter.
func NewCatalogueExporter(businessRepo port.BusinessRepository, menuRepo port.MenuRepository, offerRepo port.OfferRepository) *CatalogueExporter {
	return &CatalogueExporter{
		businessRepo: businessRepo,
		menuRepo:     menuRepo,
		offerRepo:    offerRepo,
	}
}

// Build assembles the workbook. The caller owns the returned file and must
// close it.
func (e *CatalogueExporter) Build(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeBusinesses(ctx, f); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.writeItems(ctx, f); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.writeOffers(ctx, f); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Drop the default sheet so the workbook opens on Businesses.
	_ = f.DeleteSheet("Sheet1")
	return f, nil
}

func (e *CatalogueExporter) writeBusinesses(ctx context.Context, f *excelize.File) error {
	const sheet = "Businesses"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export businesses sheet: %w", err)
	}
	headers := []interface{}{"ID", "Name", "Category", "Address", "Rating", "Reviews", "Delivery", "ETA"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("export businesses header: %w", err)
	}

	row := 2
	for offset := 0; ; offset += exportPageSize {
		businesses, total, err := e.businessRepo.List(ctx, offset, exportPageSize)
		if err != nil {
			return fmt.Errorf("export businesses: %w", err)
		}
		for i := range businesses {
			b := &businesses[i]
			category := ""
			if b.CategoryName != nil {
				category = *b.CategoryName
			}
			rating := ""
			if b.AverageRating != nil {
				rating = fmt.Sprintf("%.1f", *b.AverageRating)
			}
			values := []interface{}{
				b.ID.String(), b.Name, category, b.Address, rating,
				b.ReviewCount, b.DeliveryAvailable, b.DeliveryETA(),
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("export businesses row: %w", err)
			}
			row++
		}
		if offset+exportPageSize >= total || len(businesses) == 0 {
			return nil
		}
	}
}

func (e *CatalogueExporter) writeItems(ctx context.Context, f *excelize.File) error {
	const sheet = "FoodItems"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export items sheet: %w", err)
	}
	headers := []interface{}{"ID", "Business", "Name", "Price", "Currency", "Available", "Discounted", "Discount %"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("export items header: %w", err)
	}

	row := 2
	for offset := 0; ; offset += exportPageSize {
		items, total, err := e.menuRepo.ListAvailableItems(ctx, offset, exportPageSize)
		if err != nil {
			return fmt.Errorf("export items: %w", err)
		}
		for i := range items {
			item := &items[i]
			discount := ""
			if item.DiscountPercentage != nil {
				discount = fmt.Sprintf("%.0f", *item.DiscountPercentage)
			}
			values := []interface{}{
				item.ID.String(), item.BusinessName, item.Name, item.Price,
				item.Currency, item.IsAvailable, item.IsDiscounted, discount,
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("export items row: %w", err)
			}
			row++
		}
		if offset+exportPageSize >= total || len(items) == 0 {
			return nil
		}
	}
}

func (e *CatalogueExporter) writeOffers(ctx context.Context, f *excelize.File) error {
	const sheet = "Offers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export offers sheet: %w", err)
	}
	headers := []interface{}{"ID", "Business", "Title", "Category", "Active", "Expires"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("export offers header: %w", err)
	}

	offers, err := e.offerRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("export offers: %w", err)
	}
	for i := range offers {
		o := &offers[i]
		expires := ""
		if o.ExpiresAt != nil {
			expires = o.ExpiresAt.UTC().Format("2006-01-02 15:04")
		}
		values := []interface{}{
			o.ID.String(), o.BusinessName, o.Title, string(o.Category), o.IsActive, expires,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("export offers row: %w", err)
		}
	}
	return nil
}
