// Package ggraster renders knobs offscreen with gg.
//
// A [Frame] is a knobs.Host without live input: widgets draw straight into a
// software-rasterized image that can be saved as PNG. It is meant for
// galleries, documentation images, and golden-image tests.
//
//	f, err := ggraster.NewFrame(ggraster.Config{Width: 128, Height: 160})
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	k, err := knobs.KnobWithDrag(f, "gain", "Gain", &gain, -6, 6, 0, "%.1fdB")
//	if err != nil {
//		return err
//	}
//	knobs.StyleWiper.Draw(k, palette)
//	return f.SavePNG("gain.png")
//
// [RenderStyle] covers the common case of a single knob image.
package ggraster
