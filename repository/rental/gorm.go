package rentalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/aleksiojala-maker/hihoneyapp/util/idgen"
	"gorm.io/gorm"
)

type rentalRecord struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index"`
	ProductID     string `gorm:"index"`
	StoreID       string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	PaymentStatus string
	TotalPrice    float64
}

func (rentalRecord) TableName() string { return "rentals" }

// Gorm is the persistent ledger backend.
type Gorm struct {
	db  *gorm.DB
	ids idgen.Generator
}

func NewGorm(db *gorm.DB, ids idgen.Generator) (*Gorm, error) {
	if err := db.AutoMigrate(&rentalRecord{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db, ids: ids}, nil
}

func (g *Gorm) List(ctx context.Context) ([]model.Rental, error) {
	return g.find(ctx, "", nil)
}

func (g *Gorm) ListByProduct(ctx context.Context, productID string) ([]model.Rental, error) {
	return g.find(ctx, "product_id = ?", productID)
}

func (g *Gorm) ListByUser(ctx context.Context, userID string) ([]model.Rental, error) {
	return g.find(ctx, "user_id = ?", userID)
}

func (g *Gorm) find(ctx context.Context, cond string, arg any) ([]model.Rental, error) {
	q := g.db.WithContext(ctx)
	if cond != "" {
		q = q.Where(cond, arg)
	}
	var recs []rentalRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Rental, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromRentalRecord(rec))
	}
	return out, nil
}

func (g *Gorm) Get(ctx context.Context, id string) (*model.Rental, error) {
	var rec rentalRecord
	if err := g.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r := fromRentalRecord(rec)
	return &r, nil
}

func (g *Gorm) Create(ctx context.Context, r model.Rental) (*model.Rental, error) {
	r.ID = g.ids.NewID()
	rec := toRentalRecord(r)
	if err := g.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (g *Gorm) Update(ctx context.Context, id string, patch model.RentalPatch) (*model.Rental, error) {
	var out *model.Rental
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec rentalRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		r := fromRentalRecord(rec)
		applyPatch(&r, patch)
		rec = toRentalRecord(r)
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		out = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gorm) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&rentalRecord{}, "id = ?", id).Error
}

func toRentalRecord(r model.Rental) rentalRecord {
	return rentalRecord{
		ID:            r.ID,
		UserID:        r.UserID,
		ProductID:     r.ProductID,
		StoreID:       r.StoreID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		TotalPrice:    r.TotalPrice,
	}
}

func fromRentalRecord(rec rentalRecord) model.Rental {
	return model.Rental{
		ID:            rec.ID,
		UserID:        rec.UserID,
		ProductID:     rec.ProductID,
		StoreID:       rec.StoreID,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
		Status:        model.RentalStatus(rec.Status),
		PaymentStatus: model.PaymentStatus(rec.PaymentStatus),
		TotalPrice:    rec.TotalPrice,
	}
}
