package analysis

import (
	"context"
	"testing"

	"agritech/plantcare-api/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAnalyzer(t *testing.T) {
	result, err := Static{}.Analyze(context.Background(), storage.StoredFile{Key: "image-1.png"})
	require.NoError(t, err)

	assert.Equal(t, "Sample Plant", result.Name)
	assert.Equal(t, "Water daily, keep in sunlight.", result.CareInstructions)
}
