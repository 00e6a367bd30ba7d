//Package mpjson reads charge distributions from, and writes multipole moments to, JSON.
//It is meant for the communication of gomultipole programs with other programs,
//which can be written in any language with a JSON library.
//
//A discrete distribution is given as
//
//	{"kind": "discrete", "charges": [{"q": 1, "xyz": [0, 0, 1]}, {"q": -1, "xyz": [0, 0, -1]}]}
//
//and a continuous one either with full coordinate arrays, flattened with the first (x)
//index varying the slowest
//
//	{"kind": "continuous", "shape": [nx, ny, nz], "rho": [...], "x": [...], "y": [...], "z": [...]}
//
//or with the coordinates along each axis, which are expanded into a meshgrid
//
//	{"kind": "continuous", "shape": [nx, ny, nz], "rho": [...], "axes": {"x": [...], "y": [...], "z": [...]}}
package mpjson
