package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	tx        repo.TransactionManager
	products  repo.ProductRepository
	suppliers repo.SupplierRepository
	entries   repo.StockEntryRepository
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	suppliers repo.SupplierRepository,
	entries repo.StockEntryRepository,
) *ProductUsecase {
	return &ProductUsecase{
		tx:        tx,
		products:  products,
		suppliers: suppliers,
		entries:   entries,
	}
}

type AddProductInput struct {
	Name         string
	Category     string
	Price        decimal.Decimal
	InitialStock int64
	ReorderLevel int64
	SupplierID   int64
}

// AddProductは商品を登録し、初期在庫があれば履歴も同時に残す。
// 履歴合計＝現在在庫の関係を作成時点から成立させる。
func (u *ProductUsecase) AddProduct(ctx context.Context, in AddProductInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)

	if name == "" {
		return 0, NewValidationError("product name required")
	}
	if len(name) > 255 {
		return 0, NewValidationError("product name too long")
	}
	if category == "" {
		return 0, NewValidationError("category required")
	}
	if len(category) > 100 {
		return 0, NewValidationError("category too long")
	}
	if in.Price.IsNegative() {
		return 0, NewValidationError("price must be >= 0")
	}
	if in.InitialStock < 0 {
		return 0, NewValidationError("initial stock must be >= 0")
	}
	if in.ReorderLevel < 0 {
		return 0, NewValidationError("reorder level must be >= 0")
	}
	if in.SupplierID <= 0 {
		return 0, NewValidationError("invalid supplier id")
	}

	var productID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//仕入先の存在確認
		if _, err := r.Suppliers().FindByID(ctx, in.SupplierID); err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("supplier not found")
			}
			return err
		}

		created, err := r.Products().Create(ctx, model.Product{
			Name:          name,
			Category:      category,
			Price:         in.Price,
			StockQuantity: in.InitialStock,
			ReorderLevel:  in.ReorderLevel,
			SupplierID:    in.SupplierID,
		})
		if err != nil {
			return err
		}

		//初期在庫の分の履歴を残す
		if in.InitialStock > 0 {
			entry := model.StockEntry{
				ProductID:      created.ID,
				ChangeType:     model.ChangeTypeInitial,
				ChangeQuantity: in.InitialStock,
				EntryDate:      time.Now(),
			}
			if err := r.StockEntries().Create(ctx, entry); err != nil {
				return err
			}
		}

		productID = created.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return productID, nil
}

type RecordStockChangeInput struct {
	ProductID  int64
	ChangeType model.ChangeType
	Quantity   int64
	Date       time.Time
}

// RecordStockChangeは履歴の追記と在庫の調整を1トランザクションで行う。
// 在庫が負になる変更は適用せずに失敗させる。
func (u *ProductUsecase) RecordStockChange(ctx context.Context, in RecordStockChangeInput) error {
	if in.ProductID <= 0 {
		return NewValidationError("invalid product id")
	}
	if in.Quantity == 0 {
		return NewValidationError("quantity must not be 0")
	}

	//符号の約束：Saleは負、Restockは正
	switch in.ChangeType {
	case model.ChangeTypeSale:
		if in.Quantity > 0 {
			return NewValidationError("sale quantity must be negative")
		}
	case model.ChangeTypeRestock:
		if in.Quantity < 0 {
			return NewValidationError("restock quantity must be positive")
		}
	case model.ChangeTypeManualAdjustment:
		//どちらの符号でもよい
	default:
		return NewValidationError(fmt.Sprintf("invalid change type: %s", in.ChangeType))
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, in.ProductID); err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("product not found")
			}
			return err
		}

		//条件付き更新。商品は直前に確認済みなので、
		//RowsAffected=0は在庫不足を意味する。
		ok, err := r.Products().AdjustStock(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return NewInsufficientStockError("insufficient stock")
		}

		return r.StockEntries().Create(ctx, model.StockEntry{
			ProductID:      in.ProductID,
			ChangeType:     in.ChangeType,
			ChangeQuantity: in.Quantity,
			EntryDate:      date,
		})
	})
}

// GetHistoryは商品の在庫履歴を新しい順で返す。
func (u *ProductUsecase) GetHistory(ctx context.Context, productID int64) ([]model.StockEntry, error) {
	if productID <= 0 {
		return nil, NewValidationError("invalid product id")
	}

	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewNotFoundError("product not found")
		}
		return nil, err
	}

	return u.entries.ListByProductID(ctx, productID)
}

// フォーム用の商品一覧
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]repo.ProductRef, error) {
	return u.products.ListRefs(ctx)
}

// フォーム用のカテゴリ一覧
func (u *ProductUsecase) ListCategories(ctx context.Context) ([]string, error) {
	return u.products.ListCategories(ctx)
}

// フォーム用の仕入先一覧
func (u *ProductUsecase) ListSuppliers(ctx context.Context) ([]repo.SupplierRef, error) {
	return u.suppliers.ListRefs(ctx)
}
