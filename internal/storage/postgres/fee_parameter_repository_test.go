package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aero-lite/internal/storage"
)

func TestFeeParameterRepository_ListParameters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"key", "value"}).
		AddRow("bank.flat_floor_usd", "20").
		AddRow("house.conversion.asset.BTC", 3.5).
		AddRow("house.flagship.rate_percent", "0.2500")

	mock.ExpectQuery(regexp.QuoteMeta(storage.ListFeeParametersQuery)).WillReturnRows(rows)

	repo := NewFeeParameterRepository(mock)

	params, err := repo.ListParameters(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"bank.flat_floor_usd":         20,
		"house.conversion.asset.BTC":  3.5,
		"house.flagship.rate_percent": 0.25,
	}, params)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeParameterRepository_ListParameters_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(storage.ListFeeParametersQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"key", "value"}))

	params, err := NewFeeParameterRepository(mock).ListParameters(context.Background())

	require.NoError(t, err)
	assert.Empty(t, params)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeParameterRepository_ListParameters_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dbErr := errors.New("relation \"fee_parameters\" does not exist")
	mock.ExpectQuery(regexp.QuoteMeta(storage.ListFeeParametersQuery)).WillReturnError(dbErr)

	params, err := NewFeeParameterRepository(mock).ListParameters(context.Background())

	assert.Nil(t, params)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeParameterRepository_ListParameters_RowError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rowErr := errors.New("connection reset")
	rows := pgxmock.NewRows([]string{"key", "value"}).
		AddRow("bank.flat_floor_usd", "20").
		RowError(0, rowErr)

	mock.ExpectQuery(regexp.QuoteMeta(storage.ListFeeParametersQuery)).WillReturnRows(rows)

	_, err = NewFeeParameterRepository(mock).ListParameters(context.Background())

	assert.ErrorIs(t, err, rowErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
