package productrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
	"gorm.io/gorm"
)

type productRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Category    string
	StoreID     string `gorm:"index"`
	PricePerDay float64
	ImageURL    string
	Description string
	Features    string // JSON array
	Collection  string
	BuyPrice    *float64
}

func (productRecord) TableName() string { return "products" }

// Gorm is the persistent catalog backend.
type Gorm struct {
	db  *gorm.DB
	ids idgen.Generator
}

func NewGorm(db *gorm.DB, ids idgen.Generator) (*Gorm, error) {
	if err := db.AutoMigrate(&productRecord{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db, ids: ids}, nil
}

func (g *Gorm) List(ctx context.Context, storeID string) ([]model.Product, error) {
	q := g.db.WithContext(ctx)
	if storeID != "" {
		q = q.Where("store_id = ?", storeID)
	}
	var recs []productRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (g *Gorm) Get(ctx context.Context, id string) (*model.Product, error) {
	var rec productRecord
	if err := g.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p := fromRecord(rec)
	return &p, nil
}

func (g *Gorm) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	p.ID = g.ids.NewID()
	rec := toRecord(p)
	if err := g.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *Gorm) Update(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	var out *model.Product
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec productRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		p := fromRecord(rec)
		applyPatch(&p, patch)
		rec = toRecord(p)
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gorm) Delete(ctx context.Context, id string) error {
	// No cascade: rentals referencing the product stay in the ledger.
	return g.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id).Error
}

func toRecord(p model.Product) productRecord {
	features, _ := json.Marshal(p.Features)
	return productRecord{
		ID:          p.ID,
		Title:       p.Title,
		Category:    string(p.Category),
		StoreID:     p.StoreID,
		PricePerDay: p.PricePerDay,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Features:    string(features),
		Collection:  p.Collection,
		BuyPrice:    p.BuyPrice,
	}
}

func fromRecord(rec productRecord) model.Product {
	var features []string
	if rec.Features != "" {
		_ = json.Unmarshal([]byte(rec.Features), &features)
	}
	return model.Product{
		ID:          rec.ID,
		Title:       rec.Title,
		Category:    model.Category(rec.Category),
		StoreID:     rec.StoreID,
		PricePerDay: rec.PricePerDay,
		ImageURL:    rec.ImageURL,
		Description: rec.Description,
		Features:    features,
		Collection:  rec.Collection,
		BuyPrice:    rec.BuyPrice,
	}
}
