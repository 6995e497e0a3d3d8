/*
Package patch implements the pagination rewrite pipeline for resource list
pages.

	+-------------+
	|   Patcher   |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Anchors   |
	| (Match/Fail)|
	+-------------+

🎯 Purpose:
- Decides whether a page already paginates (idempotency guard)
- Applies the ordered rewrite steps: imports, state, slice math, map
  site, widget
- Writes the result back atomically

🔄 Flow:
1. Read page buffer
2. Skip when pagination markers are present
3. Rewrite each anchor site in order, entirely in memory
4. Write the buffer back only when every anchor matched

⚡ Key Responsibilities:
- Anchor-point matching over unstructured page text
- Exact insertion of the pagination boilerplate
- Refusing partial output: one unmatched anchor fails the whole file

📝 Design Philosophy:
The pages are never parsed into a syntax tree. Each rewrite site is a
named anchor pattern that must match or the file fails with an error
naming the anchor, so a page whose shape drifted is reported instead of
half-patched.
*/
package patch
