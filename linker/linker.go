// Package linker reconstructs the relationships the flat export format
// drops: line items back onto their documents, participants onto the
// documents that reference them, and the family-specific aggregates the
// inference engine consumes.
package linker

import (
	"context"
	"fmt"

	"github.com/simulatax/fiscalprofile/parser"
	"github.com/simulatax/fiscalprofile/record"
	"github.com/simulatax/fiscalprofile/telemetry"
)

// Link mutates res in place: generic joins first, then the aggregation pass
// for the given family. Safe on an empty result.
func Link(ctx context.Context, res *record.ExtractionResult, family parser.Family) {
	if res == nil {
		return
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("link (%s)", family))
	defer timer.End()

	attachItems(res)
	attachParticipants(res)
	enrichDescriptions(res)

	switch family {
	case parser.FamilyAccounting:
		deriveWorkingCapital(res)
	case parser.FamilyCorporateTax:
		deriveEffectiveRates(res)
	}
}

// attachItems groups line items by owning-document key and hangs each group
// off its document.
func attachItems(res *record.ExtractionResult) {
	if len(res.LineItems) == 0 || len(res.Documents) == 0 {
		return
	}

	byOwner := make(map[string][]*record.LineItem, len(res.Documents))
	for _, item := range res.LineItems {
		key := item.OwnerKey()
		byOwner[key] = append(byOwner[key], item)
	}

	for _, doc := range res.Documents {
		if items, ok := byOwner[doc.OwnerKey()]; ok {
			doc.Items = items
		}
	}
}

// attachParticipants indexes participants by code and back-references them
// from documents. Lookup only; the participants slice stays the owner.
func attachParticipants(res *record.ExtractionResult) {
	if len(res.Participants) == 0 {
		return
	}

	byCode := make(map[string]*record.Participant, len(res.Participants))
	for _, p := range res.Participants {
		byCode[p.Code] = p
	}

	for _, doc := range res.Documents {
		if doc.ParticipantCode == "" {
			continue
		}
		if p, ok := byCode[doc.ParticipantCode]; ok {
			doc.Participant = p
		}
	}
}

// enrichDescriptions fills empty line-item descriptions from the item
// catalog so the activity classifier can keyword-match them.
func enrichDescriptions(res *record.ExtractionResult) {
	if len(res.ItemCatalog) == 0 {
		return
	}

	byCode := make(map[string]string, len(res.ItemCatalog))
	for _, entry := range res.ItemCatalog {
		byCode[entry.Code] = entry.Description
	}

	for _, item := range res.LineItems {
		if item.Description == "" && item.ItemCode != "" {
			item.Description = byCode[item.ItemCode]
		}
	}
}
