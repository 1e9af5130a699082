// Package batch describes and runs many layout/theme combinations at once.
//
// A batch file lives at <base>/batch.json. Besides the entry list it
// carries the content paths a downstream print job fills the HTML
// templates with; this package stores them but never reads them.
//
// [Generate] produces entries covering every layout once with shuffled
// front and back themes, so that with at least as many layouts as themes
// each theme appears on both sides. [Run] renders entries concurrently.
package batch
