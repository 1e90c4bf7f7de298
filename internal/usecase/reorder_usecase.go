package usecase

import (
	"context"
	"fmt"
	"time"

	"inventory/internal/domain/model"
	repo "inventory/internal/repository"
)

type ReorderUsecase struct {
	tx       repo.TransactionManager
	reorders repo.ReorderRepository
}

// DI
func NewReorderUsecase(tx repo.TransactionManager, reorders repo.ReorderRepository) *ReorderUsecase {
	return &ReorderUsecase{tx: tx, reorders: reorders}
}

// PlaceReorderは発注を作成して新しいreorder_idを返す。
// 同一商品のOrderedは同時に1件まで。チェックと作成は同一トランザクション内で行い、
// すり抜けは部分ユニークインデックスが止める。
func (u *ReorderUsecase) PlaceReorder(ctx context.Context, productID int64, quantity int64) (int64, error) {
	if productID <= 0 {
		return 0, NewValidationError("invalid product id")
	}
	if quantity <= 0 {
		return 0, NewValidationError("reorder quantity must be > 0")
	}

	var reorderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("product not found")
			}
			return err
		}

		//Orderedな発注が既にあれば重複
		_, err := r.Reorders().FindActiveByProductID(ctx, productID)
		if err == nil {
			return NewConflictError("active reorder already exists for this product")
		}
		if err != repo.ErrNotFound {
			return err
		}

		created, err := r.Reorders().Create(ctx, model.Reorder{
			ProductID:       productID,
			ReorderQuantity: quantity,
			ReorderDate:     time.Now(),
			Status:          model.ReorderStatusOrdered,
		})
		if err == repo.ErrDuplicate {
			//同時に同じ商品の発注が入った
			return NewConflictError("active reorder already exists for this product")
		}
		if err != nil {
			return err
		}

		reorderID = created.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return reorderID, nil
}

// ListPendingReordersは未受領（Ordered）の発注をreorder_id昇順で返す。
func (u *ReorderUsecase) ListPendingReorders(ctx context.Context) ([]repo.PendingReorder, error) {
	return u.reorders.ListPending(ctx)
}

// ReceiveReorderは発注をReceivedにし、入荷分のRestock履歴と
// 在庫の加算を同一トランザクションで適用する。
// 受領済みの再受領は黙って無視せず、エラーで返す。
func (u *ReorderUsecase) ReceiveReorder(ctx context.Context, reorderID int64) error {
	if reorderID <= 0 {
		return NewValidationError("invalid reorder id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ro, err := r.Reorders().FindByID(ctx, reorderID)
		if err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("reorder not found")
			}
			return err
		}
		if ro.Status == model.ReorderStatusReceived {
			return NewInvalidStateError("reorder already received")
		}

		//条件付き遷移。ここで0件なら同時に受領された。
		ok, err := r.Reorders().MarkReceived(ctx, reorderID)
		if err != nil {
			return err
		}
		if !ok {
			return NewInvalidStateError("reorder already received")
		}

		if err := r.StockEntries().Create(ctx, model.StockEntry{
			ProductID:      ro.ProductID,
			ChangeType:     model.ChangeTypeRestock,
			ChangeQuantity: ro.ReorderQuantity,
			EntryDate:      time.Now(),
		}); err != nil {
			return err
		}

		ok, err = r.Products().AdjustStock(ctx, ro.ProductID, ro.ReorderQuantity)
		if err != nil {
			return err
		}
		if !ok {
			//加算で0件は商品行の欠落。FKがあるので通常は起きない。
			return fmt.Errorf("stock update failed for product %d", ro.ProductID)
		}

		return nil
	})
}
