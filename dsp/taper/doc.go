// Package taper provides the symmetric taper windows applied to analysis
// frames before the FFT.
//
// Windows are generated at odd lengths 2*halfLen+1 and evaluated on the
// centered parameter t = (i-halfLen)/halfLen * 0.5 in [-0.5, 0.5], so every
// window peaks at the center sample and tapers toward both edges. Analyze
// reports spectral properties (coherent gain, ENBW, sidelobe level) for
// comparing window choices.
package taper
