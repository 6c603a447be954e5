package textbuf

import (
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

type editKind int

const (
	kindInsert editKind = iota
	kindTyping
	kindTypingSpace
	kindDelete
)

// record is an inverse-edit pair: forward turns the old text into the new
// one, backward undoes it.
type record struct {
	forward  []dmp.Patch
	backward []dmp.Patch
	before   Pos
	after    Pos
	kind     editKind
	open     bool // typing may still coalesce into it
}

type history struct {
	undo []record
	redo []record
}

var differ = dmp.New()

func makeRecord(oldText, newText string, before, after Pos, k editKind) record {
	return record{
		forward:  differ.PatchMake(oldText, newText),
		backward: differ.PatchMake(newText, oldText),
		before:   before,
		after:    after,
		kind:     k,
		open:     k == kindTyping || k == kindTypingSpace,
	}
}

func applyPatches(patches []dmp.Patch, text string) (string, bool) {
	out, applied := differ.PatchApply(patches, text)
	for _, ok := range applied {
		if !ok {
			return text, false
		}
	}
	return out, true
}

func (h *history) record(oldText, newText string, before, after Pos, k editKind, limit int) {
	h.redo = nil
	if n := len(h.undo); n > 0 && k == kindTyping {
		top := &h.undo[n-1]
		if top.open && (top.kind == kindTyping || top.kind == kindTypingSpace) && top.after == before {
			if start, ok := applyPatches(top.backward, oldText); ok {
				merged := makeRecord(start, newText, top.before, after, top.kind)
				*top = merged
				return
			}
		}
	}
	h.seal()
	h.undo = append(h.undo, makeRecord(oldText, newText, before, after, k))
	if len(h.undo) > limit {
		h.undo = h.undo[len(h.undo)-limit:]
	}
}

// seal stops the latest record from absorbing further typing.
func (h *history) seal() {
	if n := len(h.undo); n > 0 {
		h.undo[n-1].open = false
	}
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the latest edit. It reports false and changes nothing when
// there is nothing to undo.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	rec := b.hist.undo[n-1]
	prev, ok := applyPatches(rec.backward, b.Text())
	if !ok {
		return false
	}
	rec.open = false
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = append(b.hist.redo, rec)
	b.restore(prev, rec.before)
	return true
}

// Redo re-applies the latest undone edit.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	rec := b.hist.redo[n-1]
	next, ok := applyPatches(rec.forward, b.Text())
	if !ok {
		return false
	}
	b.hist.redo = b.hist.redo[:n-1]
	b.hist.undo = append(b.hist.undo, rec)
	b.restore(next, rec.after)
	return true
}

func (b *Buffer) restore(text string, caret Pos) {
	b.lines = splitLines(text)
	b.caret = b.clamp(caret)
	b.selecting = false
	b.goalCol = -1
	b.modified = true
}
