// Package flush connects a GUI renderer to an fb.Display.
//
// A renderer hands each rendered region to a Callback together with the
// RGB565 pixels of that region. The callback must copy every pixel to the
// screen and call FlushReady on the renderer before it returns; only then
// may the renderer reuse the draw buffer. Adapter is that callback for a
// framebuffer, Panel is a minimal renderer side used by the demo.
package flush
