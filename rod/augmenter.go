package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Ensure Augmenter implements cfhelper.PageAugmenter at compile time.
var _ cfhelper.PageAugmenter = (*Augmenter)(nil)

// Augmenter inserts the user-visible cells into the live page. Targets are
// located by the node IDs stamped by the observer script; a target that no
// longer exists yields an error, never a crash.
type Augmenter struct {
	page *rod.Page
}

// NewAugmenter creates an Augmenter for the given page.
func NewAugmenter(page *rod.Page) *Augmenter {
	return &Augmenter{page: page}
}

// InsertHeaderCell appends a header cell with the given label to the header
// row identified by headID.
func (a *Augmenter) InsertHeaderCell(ctx context.Context, headID string, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := a.page.Context(ctx).Eval(insertHeaderJS, headID, label)
	if err != nil {
		return fmt.Errorf("inserting header cell %q: %w", headID, err)
	}
	return nil
}

// InsertRecordCell appends the identifier cell with its copy controls to the
// row identified by rowID.
func (a *Augmenter) InsertRecordCell(ctx context.Context, rowID string, recordID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := a.page.Context(ctx).Eval(insertRecordCellJS, rowID, recordID)
	if err != nil {
		return fmt.Errorf("inserting record cell %q: %w", rowID, err)
	}
	return nil
}

const insertHeaderJS = `(headID, label) => {
	const head = document.querySelector('[data-cfh-node="' + headID + '"]');
	if (!head) throw new Error('header node not found');
	const row = head.querySelector('tr');
	if (!row) throw new Error('header has no row');
	const th = document.createElement('th');
	th.className = 'cfh-header';
	th.textContent = label;
	row.appendChild(th);
}`

// insertRecordCellJS builds the per-row cell: the identifier text (click to
// copy it verbatim) and the two template buttons. Feedback is a CSS state
// class plus a "Copied!" caption for 1.5 seconds; a failed copy reverts
// silently.
const insertRecordCellJS = `(rowID, recordID) => {
	const row = document.querySelector('[data-cfh-node="' + rowID + '"]');
	if (!row) throw new Error('row node not found');

	const flash = (el, original) => {
		el.classList.add('cfh-copied');
		el.textContent = 'Copied!';
		setTimeout(() => {
			el.classList.remove('cfh-copied');
			el.textContent = original;
		}, 1500);
	};

	const td = document.createElement('td');
	td.className = 'cfh-cell';

	const id = document.createElement('span');
	id.className = 'cfh-record-id';
	id.textContent = recordID;
	id.addEventListener('click', () => {
		navigator.clipboard.writeText(recordID).then(() => flash(id, recordID), () => {});
	});
	td.appendChild(id);

	const addButton = (caption, slot) => {
		const btn = document.createElement('button');
		btn.className = 'cfh-copy';
		btn.textContent = caption;
		btn.addEventListener('click', () => {
			window.cfhCopy({ recordId: recordID, slot: slot }).then((res) => {
				if (res && res.ok) flash(btn, caption);
			}, () => {});
		});
		td.appendChild(btn);
	};
	addButton('Resource', 'resourceTemplate');
	addButton('Import', 'importTemplate');

	row.appendChild(td);
}`
