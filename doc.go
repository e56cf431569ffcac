// Package md2office converts structured markdown into an ordered document
// description consumable by word-processor and slide-deck writers.
//
// The package parses markdown into a sequence of typed blocks (headings,
// paragraphs, lists, tables, code, blockquotes, images, rules, labels),
// annotates tables with layout decisions (autofit mode, column widths, font
// scaling), and maps the block sequence onto one of two targets:
//
//   - the word-document target, which emits per-block style directives, and
//   - the slide-deck target, which segments the document into title,
//     section, and content slides driven by heading levels.
//
// Serializing the description into a concrete .docx/.pptx container is the
// job of an external writer; this package only produces the data shapes.
//
// # Quick Start
//
//	svc := md2office.New()
//	result, err := svc.Convert(ctx, md2office.Input{
//		Markdown: source,
//		Target:   md2office.TargetDocument,
//	})
//
// The parser never fails on malformed markdown content; it degrades to the
// closest reasonable interpretation. Only invalid configuration is rejected.
package md2office
