// Package pipeline implements the Markdown-to-notecard pipeline stages.
//
// The stages run in order over a whole document:
//   - Segmentation: Flatten and Split cut the text into bounded segments,
//     starting a new segment at every keyword marker
//   - Inline rendering: StrongRenderer (default) or GoldmarkRenderer
//   - Card filling: CardFiller wraps a segment in the title or body snippet
//   - Assembly: Step and Assemble batch cards into documents
//   - Page rendering: PageRenderer places a batch in the page scaffold
//
// Writing files and printing PDFs is handled by the root notecards package.
// Every stage here is a pure function of its inputs, apart from the cosmetic
// layout class, which is drawn from an injectable RandomSource.
package pipeline
