// Package rgb565 provides the 16-bit 5-6-5 colour format used by the ILI9163C
// display controller.
//
// A pixel packs 5 bits of red, 6 bits of green and 5 bits of blue into a
// single 16-bit word:
//
//	bit  15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//	     R4 R3 R2 R1 R0 G5 G4 G3 G2 G1 G0 B4 B3 B2 B1 B0
//
// The controller receives each word most significant byte first.
//
// This package provides:
//
// - Color: a packed 5-6-5 value implementing color.Color
// - RGB: conversion from 8 bits per channel, by truncation
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image storing pixels in the controller's byte order
//
// Example usage:
//
//	orange := rgb565.RGB(0xFF, 0x80, 0x00)
//
//	img := rgb565.NewImage(image.Rect(0, 0, 128, 128))
//	draw.Draw(img, img.Bounds(), image.NewUniform(orange), image.Point{}, draw.Src)
//	w := img.RGB565At(10, 20) // 0xFC00
package rgb565
