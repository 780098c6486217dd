// SPDX-License-Identifier: MIT
//
// Package widget is the arena-of-ids widget/anchor model: widgets and
// their eight anchors are stored by small integer id rather than
// pointer, so the parent/child/target relationships spec.md's source
// expressed as a cyclic object graph become plain (widgetID, anchorType)
// pairs instead.
package widget
