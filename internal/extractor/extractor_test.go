package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appmeta/appmeta/internal/domain"
)

func TestForFormat(t *testing.T) {
	assert.IsType(t, &IPAExtractor{}, ForFormat(domain.FormatIPA))
	assert.IsType(t, &APKExtractor{}, ForFormat(domain.FormatAPK))
	assert.Nil(t, ForFormat(domain.FormatUnknown))
}
