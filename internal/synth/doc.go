// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synth turns a resolved set of flat configuration inputs into the
// configuration document of the selected gateway upstream family.
//
// Each family has its own schema builder producing a value tree; the
// synthesizer picks the builder for the requested family (falling back to
// openclaw on unknown selectors), renders the tree in the family's fixed
// format, and writes the document plus a backup copy with owner-only
// permissions. Families configured entirely out-of-band build no tree and
// produce no file.
package synth
