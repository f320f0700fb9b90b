package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundle-layout/internal/policies"
	"bundle-layout/internal/types"
)

// Classifier computes the classification of every directory bottom-up.
// It runs before any filesystem effect and only sets node attributes.
type Classifier struct{}

func NewClassifier() Classifier {
	return Classifier{}
}

func (c Classifier) Classify(ctx context.Context, root *types.DirectoryNode) (types.ClassificationSummary, error) {
	summary := types.ClassificationSummary{}
	if _, err := classifyNode(root, &summary); err != nil {
		return types.ClassificationSummary{}, err
	}
	log.Ctx(ctx).Debug().
		Int("data_only", summary.DataOnly).
		Int("binary_only", summary.BinaryOnly).
		Int("mixed", summary.Mixed).
		Msg("directories classified")
	return summary, nil
}

func classifyNode(node *types.DirectoryNode, summary *types.ClassificationSummary) (types.Classification, error) {
	node.Framework = policies.IsFrameworkDir(node.Name)
	hasData := false
	hasBinary := false

	for _, entry := range node.Files {
		switch entry.EffectiveKind() {
		case types.ResourceKindBinary:
			hasBinary = true
		default:
			if node.Framework && !entry.IsSymlink() {
				return "", errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("conflicting classification: data file %q placed directly in framework bundle %q", entry.Dest, node.Path))
			}
			hasData = true
		}
	}
	for _, child := range node.Dirs {
		class, err := classifyNode(child, summary)
		if err != nil {
			return "", err
		}
		switch class {
		case types.ClassificationDataOnly:
			hasData = true
		case types.ClassificationBinaryOnly:
			hasBinary = true
		default:
			hasData = true
			hasBinary = true
		}
	}

	switch {
	case node.Framework:
		node.Classification = types.ClassificationBinaryOnly
	case hasData && hasBinary:
		node.Classification = types.ClassificationMixed
	case hasBinary:
		node.Classification = types.ClassificationBinaryOnly
	default:
		node.Classification = types.ClassificationDataOnly
	}
	if node.Path != "" {
		countClassification(summary, node.Classification)
	}
	return node.Classification, nil
}

func countClassification(summary *types.ClassificationSummary, class types.Classification) {
	switch class {
	case types.ClassificationDataOnly:
		summary.DataOnly++
	case types.ClassificationBinaryOnly:
		summary.BinaryOnly++
	case types.ClassificationMixed:
		summary.Mixed++
	}
}
