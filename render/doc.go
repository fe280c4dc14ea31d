// Package render visualizes a finished search.
//
// An Animation holds a grid, its endpoints, the visited trace and the path.
// Frame i reveals visited cells one at a time; the last TailFrames frames
// overlay the final route. Record builds an Animation from a live A*
// search and additionally shows the frontier of each step.
//
// Output:
//
//   - Text(frame)          ASCII art, one row per line.
//   - Image / PNG(frame)   drawn with github.com/fogleman/gg.
//   - GIF(animation)       one paletted frame per animation frame.
//
// Colors follow DefaultPalette (golang.org/x/image/colornames): white
// empty, black wall, red endpoints, light blue visited, gold path and pale
// green frontier.
package render
