package postgres

import (
	"context"
	"testing"

	"agentpay/internal/core/ports"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocStore_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)

	mock.ExpectQuery("SELECT data, version FROM documents").
		WithArgs("balances", "255700000001").
		WillReturnRows(pgxmock.NewRows([]string{"data", "version"}).
			AddRow([]byte(`{"amount":100000}`), int64(3)))

	doc, err := store.Get(context.Background(), "balances", "255700000001")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, int64(3), doc.Version)
	assert.JSONEq(t, `{"amount":100000}`, string(doc.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_Get_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)

	mock.ExpectQuery("SELECT data, version FROM documents").
		WithArgs("balances", "ghost").
		WillReturnRows(pgxmock.NewRows([]string{"data", "version"}))

	doc, err := store.Get(context.Background(), "balances", "ghost")
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_Put_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)
	data := []byte(`{"status":"pending"}`)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("deposit_requests", "r1", data).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	v, err := store.Put(context.Background(), "deposit_requests", "r1", data, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_Put_CreateConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)
	data := []byte(`{"status":"pending"}`)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("deposit_requests", "r1", data).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	_, err = store.Put(context.Background(), "deposit_requests", "r1", data, 0)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_Put_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)
	data := []byte(`{"status":"confirmed"}`)

	mock.ExpectQuery("UPDATE documents SET data").
		WithArgs("deposit_requests", "r1", data, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(int64(2)))

	v, err := store.Put(context.Background(), "deposit_requests", "r1", data, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_Put_StaleVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)
	data := []byte(`{"status":"completed"}`)

	mock.ExpectQuery("UPDATE documents SET data").
		WithArgs("deposit_requests", "r1", data, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"version"}))

	_, err = store.Put(context.Background(), "deposit_requests", "r1", data, 1)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocStore_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewDocStore(mock)

	mock.ExpectQuery("SELECT doc_key, data, version FROM documents").
		WithArgs("agents").
		WillReturnRows(pgxmock.NewRows([]string{"doc_key", "data", "version"}).
			AddRow("a1", []byte(`{"id":"a1"}`), int64(1)).
			AddRow("a2", []byte(`{"id":"a2"}`), int64(4)))

	all, err := store.List(context.Background(), "agents")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(4), all["a2"].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
