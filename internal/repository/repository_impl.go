package repository

import (
	"context"
	"database/sql"

	"github.com/Hamdhan7/design-fabric-backend/internal/domain"
	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CatalogRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &CatalogRepositoryImpl{
		db: db,
	}
}

func (r *CatalogRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(name, description, price, image_url) VALUES (:name, :description, :price, :image_url) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CatalogRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (rowsAffected int64, err error) {
	res, err := r.db.NamedExecContext(ctx, "UPDATE products SET name = :name, description = :description, price = :price, image_url = :image_url WHERE id = :id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	return res.RowsAffected()
}

func (r *CatalogRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CatalogRepositoryImpl) DeleteOrdersByProductID(ctx context.Context, productID int64) (err error) {
	_, err = r.tx.ExecContext(ctx, "DELETE FROM product_orders WHERE product_id = $1", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteOrdersByProductID").Msg("")
		return
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (rowsAffected int64, err error) {
	res, err := r.tx.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return res.RowsAffected()
}

func (r *CatalogRepositoryImpl) GetProductImageURLs(ctx context.Context) (urls []string, err error) {
	err = r.db.SelectContext(ctx, &urls, "SELECT image_url FROM products WHERE image_url IS NOT NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductImageURLs").Msg("")
		return nil, err
	}

	return
}

func (r *CatalogRepositoryImpl) GetOrdersWithProducts(ctx context.Context) (data []domain.OrderProductRow, err error) {
	query := `SELECT po.id, po.product_id, po.customer_name, po.customer_email, po.customer_phone_number, po.customer_address,
		p.name AS product_name
		FROM product_orders po
		LEFT JOIN products p ON po.product_id = p.id`

	err = r.db.SelectContext(ctx, &data, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersWithProducts").Msg("")
		return nil, err
	}

	return
}

func (r *CatalogRepositoryImpl) DeleteOrder(ctx context.Context, id int64) (rowsAffected int64, err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM product_orders WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteOrder").Msg("")
		return
	}

	return res.RowsAffected()
}

// HandleTrx needs the named return: the deferred commit assigns its error to
// err so a failed commit reaches the caller instead of reporting success.
func (r *CatalogRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	txRepo := &CatalogRepositoryImpl{
		tx: tx,
	}

	err = fn(ctx, txRepo)

	return err
}
