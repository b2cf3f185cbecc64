package spectrum

// Colour-matching functions sampled on the Frequency Grid: the CIE 1931 2
// degree observer converted to linear sRGB primaries, each channel scaled so
// it sums to one. A flat reflectance of 1 therefore projects to (1, 1, 1).
// The red and green curves carry the usual negative lobes.
var (
	redObserver = Spectrum{
		0.000090, 0.000277, 0.000928, 0.002777, 0.008350, 0.016426,
		0.017273, 0.011468, 0.001395, -0.011558, -0.024017, -0.034810,
		-0.047888, -0.063872, -0.071911, -0.062926, -0.041616, -0.010038,
		0.030700, 0.078112, 0.126756, 0.167976, 0.192079, 0.192378,
		0.169650, 0.130113, 0.091886, 0.058610, 0.034239, 0.018187,
		0.009747, 0.004736, 0.002370, 0.001208, 0.000605, 0.000301,
	}

	greenObserver = Spectrum{
		-0.000097, -0.000301, -0.001017, -0.003087, -0.009464, -0.019322,
		-0.021886, -0.017852, -0.009860, 0.003437, 0.019919, 0.037349,
		0.060432, 0.092862, 0.125687, 0.143897, 0.148892, 0.142744,
		0.127332, 0.103338, 0.073412, 0.041974, 0.015218, -0.002776,
		-0.011191, -0.012383, -0.010442, -0.007306, -0.004479, -0.002435,
		-0.001326, -0.000651, -0.000327, -0.000167, -0.000083, -0.000041,
	}

	blueObserver = Spectrum{
		0.000710, 0.002207, 0.007467, 0.022824, 0.071036, 0.152370,
		0.191886, 0.194231, 0.182295, 0.139518, 0.086210, 0.046499,
		0.022875, 0.006714, -0.006041, -0.012584, -0.016184, -0.017483,
		-0.017089, -0.015420, -0.012860, -0.009913, -0.007090, -0.004790,
		-0.003091, -0.001883, -0.001109, -0.000624, -0.000337, -0.000172,
		-0.000089, -0.000042, -0.000021, -0.000011, -0.000005, -0.000003,
	}
)
