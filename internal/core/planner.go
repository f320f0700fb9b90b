package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundle-layout/internal/policies"
	"bundle-layout/internal/shared"
	"bundle-layout/internal/types"
)

// Operation phases. Operations are emitted per phase and concatenated, so
// every symlink is created after the path it points at.
const (
	phaseRoots = iota
	phaseContent
	phaseAliases
	phaseDirLinks
	phaseLeafLinks
	phaseReplicated
	phaseCount
)

// Planner turns a classified destination tree into placement decisions
// and an ordered list of filesystem operations. It never touches the
// filesystem itself.
type Planner struct {
	naming policies.NamingPolicy
}

func NewPlanner(naming policies.NamingPolicy) Planner {
	return Planner{naming: naming}
}

type planBuilder struct {
	naming    policies.NamingPolicy
	phases    [phaseCount][]types.Operation
	decisions []types.PlacementDecision
}

func (p Planner) Plan(ctx context.Context, root *types.DirectoryNode) (types.LayoutPlan, error) {
	assert.NotEmpty(ctx, p.naming.Replacement(), "dot replacement must be set")
	if root == nil || root.Classification == "" {
		return types.LayoutPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("destination tree must be classified before planning")
	}

	b := &planBuilder{naming: p.naming}
	b.add(phaseRoots, types.Operation{Type: types.OperationMkdir, Root: types.RootResources})
	b.add(phaseRoots, types.Operation{Type: types.OperationMkdir, Root: types.RootFrameworks})
	// The content root always exists in both bundle roots.
	if err := b.placeMixed(root, ""); err != nil {
		return types.LayoutPlan{}, err
	}

	plan := types.LayoutPlan{
		DotReplacement: p.naming.Replacement(),
		Decisions:      b.decisions,
	}
	for _, ops := range b.phases {
		plan.Operations = append(plan.Operations, ops...)
	}
	log.Ctx(ctx).Debug().
		Int("decisions", len(plan.Decisions)).
		Int("operations", len(plan.Operations)).
		Msg("layout planned")
	return plan, nil
}

// placeMixed places the children of a directory that exists as a real
// directory in both roots. framesDir is its physical path in Frameworks.
func (b *planBuilder) placeMixed(node *types.DirectoryNode, framesDir string) error {
	if err := b.checkRenames(node, false); err != nil {
		return err
	}
	for _, name := range childNames(node) {
		logical := shared.JoinLogical(node.Path, name)
		framesPath := shared.JoinLogical(framesDir, name)
		if entry, ok := node.Files[name]; ok {
			b.placeLeaf(entry, logical, framesPath)
			continue
		}

		child := node.Dirs[name]
		switch child.Classification {
		case types.ClassificationDataOnly:
			b.decideDir(child, types.RootResources, types.LinkLevelDirectory)
			if err := b.materialize(child, types.RootResources, logical, false); err != nil {
				return err
			}
			b.add(phaseDirLinks, types.Operation{
				Type:   types.OperationSymlink,
				Root:   types.RootFrameworks,
				Path:   framesPath,
				Target: shared.RelativeLinkTarget(logical, string(types.RootResources), logical),
				Link:   types.LinkLevelDirectory,
			})
		case types.ClassificationBinaryOnly:
			b.decideDir(child, types.RootFrameworks, types.LinkLevelDirectory)
			physical := b.framesDir(framesDir, name)
			if err := b.materialize(child, types.RootFrameworks, physical, false); err != nil {
				return err
			}
			b.add(phaseDirLinks, types.Operation{
				Type:   types.OperationSymlink,
				Root:   types.RootResources,
				Path:   logical,
				Target: shared.RelativeLinkTarget(logical, string(types.RootFrameworks), logical),
				Link:   types.LinkLevelDirectory,
			})
		default:
			b.decideDir(child, "", types.LinkLevelNone)
			b.add(phaseContent, types.Operation{Type: types.OperationMkdir, Root: types.RootResources, Path: logical})
			physical := b.framesDir(framesDir, name)
			b.add(phaseContent, types.Operation{Type: types.OperationMkdir, Root: types.RootFrameworks, Path: physical})
			if err := b.placeMixed(child, physical); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeLeaf handles a file directly inside a directory present in both
// roots: the owning root gets the copy, the other a leaf-level link.
func (b *planBuilder) placeLeaf(entry types.ResourceEntry, logical string, framesPath string) {
	switch {
	case entry.IsSymlink():
		b.decide(logical, false, "", "", types.LinkLevelReplicated)
		b.add(phaseReplicated, types.Operation{
			Type: types.OperationSymlink, Root: types.RootResources, Path: logical,
			Target: entry.Source, Link: types.LinkLevelReplicated,
		})
		b.add(phaseReplicated, types.Operation{
			Type: types.OperationSymlink, Root: types.RootFrameworks, Path: framesPath,
			Target: entry.Source, Link: types.LinkLevelReplicated,
		})
	case entry.Kind == types.ResourceKindBinary:
		b.decide(logical, false, "", types.RootFrameworks, types.LinkLevelLeaf)
		b.add(phaseContent, types.Operation{
			Type: types.OperationCopy, Root: types.RootFrameworks, Path: framesPath, Target: entry.Source,
		})
		b.add(phaseLeafLinks, types.Operation{
			Type: types.OperationSymlink, Root: types.RootResources, Path: logical,
			Target: shared.RelativeLinkTarget(logical, string(types.RootFrameworks), logical),
			Link:   types.LinkLevelLeaf,
		})
	default:
		b.decide(logical, false, "", types.RootResources, types.LinkLevelLeaf)
		b.add(phaseContent, types.Operation{
			Type: types.OperationCopy, Root: types.RootResources, Path: logical, Target: entry.Source,
		})
		b.add(phaseLeafLinks, types.Operation{
			Type: types.OperationSymlink, Root: types.RootFrameworks, Path: framesPath,
			Target: shared.RelativeLinkTarget(logical, string(types.RootResources), logical),
			Link:   types.LinkLevelLeaf,
		})
	}
}

// materialize writes a whole subtree into a single root. The other root
// reaches it through a link on the subtree's top directory, so nothing
// below is linked individually.
func (b *planBuilder) materialize(node *types.DirectoryNode, root types.Root, physical string, inFramework bool) error {
	inFramework = inFramework || node.Framework
	sanitize := root == types.RootFrameworks && !inFramework
	if sanitize {
		if err := b.checkRenames(node, true); err != nil {
			return err
		}
	}
	b.add(phaseContent, types.Operation{Type: types.OperationMkdir, Root: root, Path: physical})

	for _, name := range childNames(node) {
		logical := shared.JoinLogical(node.Path, name)
		childPath := shared.JoinLogical(physical, name)
		if entry, ok := node.Files[name]; ok {
			b.decide(logical, false, "", root, types.LinkLevelNone)
			if entry.IsSymlink() {
				b.add(phaseReplicated, types.Operation{
					Type: types.OperationSymlink, Root: root, Path: childPath,
					Target: entry.Source, Link: types.LinkLevelReplicated,
				})
				continue
			}
			b.add(phaseContent, types.Operation{
				Type: types.OperationCopy, Root: root, Path: childPath, Target: entry.Source,
			})
			continue
		}

		child := node.Dirs[name]
		if sanitize {
			childPath = b.framesDir(physical, name)
		}
		b.decideDir(child, root, types.LinkLevelNone)
		if err := b.materialize(child, root, childPath, inFramework); err != nil {
			return err
		}
	}

	if node.Framework {
		if version := currentVersionFor(node); version != "" {
			b.decide(shared.JoinLogical(node.Path, frameworkVersionsDir, frameworkCurrentLink), false, "", root, types.LinkLevelVersion)
			b.add(phaseDirLinks, types.Operation{
				Type:   types.OperationSymlink,
				Root:   root,
				Path:   shared.JoinLogical(physical, frameworkVersionsDir, frameworkCurrentLink),
				Target: version,
				Link:   types.LinkLevelVersion,
			})
		}
	}
	return nil
}

// framesDir returns the physical Frameworks path for a real directory named
// name under parent, planning the alias link when the name is sanitized.
func (b *planBuilder) framesDir(parent string, name string) string {
	physicalName := b.naming.Sanitize(name)
	if physicalName != name {
		b.add(phaseAliases, types.Operation{
			Type:   types.OperationSymlink,
			Root:   types.RootFrameworks,
			Path:   shared.JoinLogical(parent, name),
			Target: physicalName,
			Link:   types.LinkLevelAlias,
		})
	}
	return shared.JoinLogical(parent, physicalName)
}

// checkRenames rejects sanitized Frameworks names that collide with a
// sibling. Data-only children of a mixed directory are links in
// Frameworks and keep their name, unless the whole subtree is materialized
// there.
func (b *planBuilder) checkRenames(node *types.DirectoryNode, materialized bool) error {
	var renamed []string
	for name, child := range node.Dirs {
		if !materialized && child.Classification == types.ClassificationDataOnly {
			continue
		}
		if b.naming.NeedsSanitize(name) {
			renamed = append(renamed, name)
		}
	}
	if len(renamed) == 0 {
		return nil
	}
	return b.naming.CheckSiblings(node.Path, childNames(node), renamed)
}

func (b *planBuilder) add(phase int, op types.Operation) {
	b.phases[phase] = append(b.phases[phase], op)
}

func (b *planBuilder) decideDir(node *types.DirectoryNode, owner types.Root, link types.LinkLevel) {
	b.decide(node.Path, true, node.Classification, owner, link)
}

func (b *planBuilder) decide(path string, dir bool, class types.Classification, owner types.Root, link types.LinkLevel) {
	b.decisions = append(b.decisions, types.PlacementDecision{
		Path:           path,
		Directory:      dir,
		Classification: class,
		Owner:          owner,
		Link:           link,
	})
}

func childNames(node *types.DirectoryNode) []string {
	names := make([]string, 0, len(node.Dirs)+len(node.Files))
	for name := range node.Dirs {
		names = append(names, name)
	}
	for name := range node.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
