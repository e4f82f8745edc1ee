package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindTransactionsQuery(t *testing.T, rawQuery string) (dto.ListTransactionsParams, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	var params dto.ListTransactionsParams
	err := c.ShouldBindQuery(&params)
	return params, err
}

func TestListTransactionsParamsSideBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NoError(t, dto.RegisterBindingValidations(v))

	params, err := bindTransactionsQuery(t, "side=party")
	assert.NoError(t, err)
	require.NotNil(t, params.Side)
	assert.Equal(t, domain.SideParty, *params.Side)

	params, err = bindTransactionsQuery(t, "side=supplier")
	assert.NoError(t, err)
	require.NotNil(t, params.Side)
	assert.Equal(t, domain.SideSupplier, *params.Side)

	// No filter at all is fine.
	params, err = bindTransactionsQuery(t, "")
	assert.NoError(t, err)
	assert.Nil(t, params.Side)

	// An unknown side must fail the bind, not silently match nothing.
	_, err = bindTransactionsQuery(t, "side=garbage")
	assert.Error(t, err)
}
