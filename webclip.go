// Package webclip turns raw captured web-page text into normalized,
// structured documents. Raw captures arrive from browser extensions or
// manual submission; a pipeline of enrichment strategies (external NLP
// service, generative model, local heuristics) produces a document with
// title, summary, keywords, emotions, media metadata and an optional
// embedding, ready for storage and later search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, http/).
package webclip
