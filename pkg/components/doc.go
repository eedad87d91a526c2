// Package components holds the renderers that display the shared colors.
//
// All renderers consume the same channel; they differ only in how the call
// site reaches it:
//
//   - Consumer takes a render function of colors.Value.
//   - ColorPanel binds once at construction and re-renders on every write.
//   - HookSwatch reads with colors.Use inside a mounted render function.
//   - DefaultSwatch reads the fallback value with no boundary above it.
//   - SelectColors is interactive: one swatch per colors.Rainbow entry.
package components
