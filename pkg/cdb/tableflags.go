/*
Copyright 2026 The CDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cdb

// tableFlags is the fixed table_id -> TABLE_FLAGS value lookup. Its
// entries are a synthetic placeholder, not values extracted from a
// real save: odd identifiers 3 through 261, each mapped to
// (id*37+11) % 4096 (see the tableflags.go entry in DESIGN.md). The
// bitfield meaning of the value is undocumented and not derived here. Table identifiers absent from this map cause the
// encoder to fail with UnknownTableIDError.
var tableFlags = map[uint32]uint32{
	3: 122,
	5: 196,
	7: 270,
	9: 344,
	11: 418,
	13: 492,
	15: 566,
	17: 640,
	19: 714,
	21: 788,
	23: 862,
	25: 936,
	27: 1010,
	29: 1084,
	31: 1158,
	33: 1232,
	35: 1306,
	37: 1380,
	39: 1454,
	41: 1528,
	43: 1602,
	45: 1676,
	47: 1750,
	49: 1824,
	51: 1898,
	53: 1972,
	55: 2046,
	57: 2120,
	59: 2194,
	61: 2268,
	63: 2342,
	65: 2416,
	67: 2490,
	69: 2564,
	71: 2638,
	73: 2712,
	75: 2786,
	77: 2860,
	79: 2934,
	81: 3008,
	83: 3082,
	85: 3156,
	87: 3230,
	89: 3304,
	91: 3378,
	93: 3452,
	95: 3526,
	97: 3600,
	99: 3674,
	101: 3748,
	103: 3822,
	105: 3896,
	107: 3970,
	109: 4044,
	111: 22,
	113: 96,
	115: 170,
	117: 244,
	119: 318,
	121: 392,
	123: 466,
	125: 540,
	127: 614,
	129: 688,
	131: 762,
	133: 836,
	135: 910,
	137: 984,
	139: 1058,
	141: 1132,
	143: 1206,
	145: 1280,
	147: 1354,
	149: 1428,
	151: 1502,
	153: 1576,
	155: 1650,
	157: 1724,
	159: 1798,
	161: 1872,
	163: 1946,
	165: 2020,
	167: 2094,
	169: 2168,
	171: 2242,
	173: 2316,
	175: 2390,
	177: 2464,
	179: 2538,
	181: 2612,
	183: 2686,
	185: 2760,
	187: 2834,
	189: 2908,
	191: 2982,
	193: 3056,
	195: 3130,
	197: 3204,
	199: 3278,
	201: 3352,
	203: 3426,
	205: 3500,
	207: 3574,
	209: 3648,
	211: 3722,
	213: 3796,
	215: 3870,
	217: 3944,
	219: 4018,
	221: 4092,
	223: 70,
	225: 144,
	227: 218,
	229: 292,
	231: 366,
	233: 440,
	235: 514,
	237: 588,
	239: 662,
	241: 736,
	243: 810,
	245: 884,
	247: 958,
	249: 1032,
	251: 1106,
	253: 1180,
	255: 1254,
	257: 1328,
	259: 1402,
	261: 1476,
}

// TableFlags returns the fixed TABLE_FLAGS value for tableID and
// whether one is known.
func TableFlags(tableID uint32) (uint32, bool) {
	v, ok := tableFlags[tableID]
	return v, ok
}
