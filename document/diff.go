package document

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff computes the edits that transform this document's text into the
// other document's text. This is the multi-version history path: compare
// two snapshots produced by ApplyChanges without replaying commands.
func (d *Document) Diff(other *Document) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(d.Text(), other.Text(), false)
	return dmp.DiffCleanupSemantic(diffs)
}
