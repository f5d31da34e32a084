package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/simulatax/fiscalprofile/profile"
)

func TestRenderProfile(t *testing.T) {
	p := profile.Assemble(context.Background(), nil)
	p.Company.Name = "ACME COMERCIO LTDA"

	var buf bytes.Buffer
	renderProfile(&buf, p)

	out := buf.String()
	assert.Contains(t, out, "Company")
	assert.Contains(t, out, "ACME COMERCIO LTDA")
	assert.Contains(t, out, "Fiscal parameters")
	assert.Contains(t, out, "Financial cycle")
	assert.Contains(t, out, "icms")
	assert.Contains(t, out, "30.00%")
}

func TestRenderProfileTaxRowsSorted(t *testing.T) {
	p := profile.Assemble(context.Background(), nil)

	var buf bytes.Buffer
	renderProfile(&buf, p)

	// Map iteration order is random; the rows must come out alphabetically.
	out := buf.String()
	last := -1
	for _, name := range []string{"cofins", "icms", "ipi", "iss", "pis"} {
		idx := strings.Index(out, "  "+name)
		assert.True(t, idx > last, "%s out of order", name)
		last = idx
	}
}

func TestRenderProfileEmptyValuesDashed(t *testing.T) {
	p := profile.Assemble(context.Background(), nil)

	var buf bytes.Buffer
	renderProfile(&buf, p)

	// The empty company name renders as a dash placeholder.
	assert.Contains(t, buf.String(), " -")
}
