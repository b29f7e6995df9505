package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriverState struct {
	execRows   int64
	commitErr  error
	committed  bool
	rolledBack bool
}

type fakeConnector struct {
	state *fakeDriverState
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{state: c.state}, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use the connector")
}

type fakeConn struct {
	state *fakeDriverState
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return &fakeStmt{state: c.state}, nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return &fakeTx{state: c.state}, nil
}

type fakeStmt struct {
	state *fakeDriverState
}

func (s *fakeStmt) Close() error {
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(s.state.execRows), nil
}

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, io.EOF
}

type fakeTx struct {
	state *fakeDriverState
}

func (t *fakeTx) Commit() error {
	t.state.committed = true
	return t.state.commitErr
}

func (t *fakeTx) Rollback() error {
	t.state.rolledBack = true
	return nil
}

func createFakeRepository(state *fakeDriverState) CatalogRepository {
	return CreateCatalogRepository(sqlx.NewDb(sql.OpenDB(&fakeConnector{state: state}), "postgres"))
}

func TestHandleTrxPropagatesCommitFailure(t *testing.T) {
	commitErr := errors.New("commit failed")
	state := &fakeDriverState{execRows: 1, commitErr: commitErr}
	repo := createFakeRepository(state)

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, txRepo CatalogRepository) error {
		if err := txRepo.DeleteOrdersByProductID(ctx, 7); err != nil {
			return err
		}

		_, err := txRepo.DeleteProduct(ctx, 7)
		return err
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commitErr)
	assert.True(t, state.committed)
}

func TestHandleTrxCommitsWhenFnSucceeds(t *testing.T) {
	// zero rows affected is not an error: the closure still commits, so work
	// done earlier in the transaction (order-row cleanup) is kept
	state := &fakeDriverState{execRows: 0}
	repo := createFakeRepository(state)

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, txRepo CatalogRepository) error {
		if err := txRepo.DeleteOrdersByProductID(ctx, 7); err != nil {
			return err
		}

		rowsAffected, err := txRepo.DeleteProduct(ctx, 7)
		require.NoError(t, err)
		assert.Zero(t, rowsAffected)
		return err
	})

	require.NoError(t, err)
	assert.True(t, state.committed)
	assert.False(t, state.rolledBack)
}

func TestHandleTrxRollsBackOnFnError(t *testing.T) {
	fnErr := errors.New("statement failed")
	state := &fakeDriverState{}
	repo := createFakeRepository(state)

	err := repo.HandleTrx(context.Background(), func(ctx context.Context, txRepo CatalogRepository) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.True(t, state.rolledBack)
	assert.False(t, state.committed)
}
