// Package fb provides a library to draw on a Linux framebuffer device
// (fbdev). The device memory is mapped into the process and exposed as a
// grid of RGB565 pixels with a few fill primitives, enough to act as the
// output stage of a GUI renderer that flushes dirty rectangles.
package fb
