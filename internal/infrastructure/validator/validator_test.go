package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Content string `binding:"required,notblank"`
}

func TestRegisterCustomValidators_NotBlank(t *testing.T) {
	RegisterCustomValidators()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	assert.NoError(t, v.Var("hello", "notblank"))
	assert.Error(t, v.Var("   ", "notblank"))
	assert.Error(t, binding.Validator.ValidateStruct(&sample{Content: "\t\n"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&sample{Content: "hi"}))
}
