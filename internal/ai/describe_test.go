package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tmc/langchaingo/llms"
)

// MockLLM is a mock implementation of the LLM interface
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func TestDescribeGenerated(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).
		Return("  Peixe grelhado fresco com banana e molho de cebola.  ", nil)

	gen := New(mockLLM)
	desc, err := gen.Describe(context.Background(), "Mufete", "Mains")

	assert.NoError(t, err)
	assert.True(t, desc.Generated)
	assert.Equal(t, "Peixe grelhado fresco com banana e molho de cebola.", desc.Text)
	assert.Empty(t, desc.Reason)
	mockLLM.AssertExpectations(t)
}

func TestDescribePromptCarriesDishAndCategory(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Mufete") && strings.Contains(prompt, "Mains")
	})).Return("descrição", nil)

	gen := New(mockLLM)
	_, err := gen.Describe(context.Background(), "Mufete", "Mains")

	assert.NoError(t, err)
	mockLLM.AssertExpectations(t)
}

func TestDescribeFallsBackOnModelError(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).
		Return("", errors.New("rate limited"))

	gen := New(mockLLM)
	desc, err := gen.Describe(context.Background(), "Calulu", "Mains")

	// Model failures degrade, they do not propagate.
	assert.NoError(t, err)
	assert.False(t, desc.Generated)
	assert.Equal(t, FallbackDescription, desc.Text)
	assert.Equal(t, "rate limited", desc.Reason)
}

func TestDescribeFallsBackOnEmptyResponse(t *testing.T) {
	mockLLM := new(MockLLM)
	mockLLM.On("Call", mock.Anything, mock.Anything).Return("   ", nil)

	gen := New(mockLLM)
	desc, err := gen.Describe(context.Background(), "Kizaca", "Starters")

	assert.NoError(t, err)
	assert.False(t, desc.Generated)
	assert.Equal(t, FallbackDescription, desc.Text)
}

func TestDescribeWithoutModel(t *testing.T) {
	gen := New(nil)
	desc, err := gen.Describe(context.Background(), "Cuca Preta", "Drinks")

	assert.NoError(t, err)
	assert.False(t, desc.Generated)
	assert.Equal(t, FallbackDescription, desc.Text)
}

func TestDescribeRejectsEmptyName(t *testing.T) {
	mockLLM := new(MockLLM)

	gen := New(mockLLM)
	_, err := gen.Describe(context.Background(), "   ", "Mains")

	assert.ErrorIs(t, err, ErrEmptyDishName)
	// No external call is made for invalid input.
	mockLLM.AssertNotCalled(t, "Call", mock.Anything, mock.Anything)
}
