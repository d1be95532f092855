package isom

// BrushId indexes the eight built-in tileset terrain-type catalogs.
type BrushId int

const (
	BrushBadlands BrushId = iota
	BrushSpace
	BrushInstallation
	BrushAshworld
	BrushJungle
	BrushDesert
	BrushArctic
	BrushTwilight
	brushTotal
)

// Brush bundles one tileset's terrain-type descriptor table, its
// compressed terrain-type adjacency list (see ExpandTerrainTypeMap), and
// the TerrainTypeInfo index terrain placement defaults to.
type Brush struct {
	Name            string
	TerrainTypeInfo []TerrainTypeInfo
	TerrainTypeMap  []uint16

	// DefaultTerrainIndex indexes TerrainTypeInfo directly -- it is a
	// terrain-type index, not an isom value.
	DefaultTerrainIndex uint16
}

// Badlands terrain-type indices.
const (
	badlandsDirt        = 2
	badlandsHighDirt     = 3
	badlandsMud          = 4
	badlandsWater        = 5
	badlandsGrass        = 6
	badlandsHighGrass    = 7
	badlandsAsphalt      = 14
	badlandsRockyGround  = 15
	badlandsStructure    = 18

	badlandsDefault = badlandsDirt
)

var badlandsTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 10},
	{Index: 1},
	{Index: badlandsDirt, IsomValue: 1, LinkId: 1, Name: "Dirt"},
	{Index: badlandsHighDirt, IsomValue: 2, BrushSortOrder: 2, LinkId: 2, Name: "High Dirt"},
	{Index: badlandsMud, IsomValue: 9, BrushSortOrder: 1, LinkId: 4, Name: "Mud"},
	{Index: badlandsWater, IsomValue: 3, BrushSortOrder: 3, LinkId: 3, Name: "Water"},
	{Index: badlandsGrass, IsomValue: 4, BrushSortOrder: 4, LinkId: 5, Name: "Grass"},
	{Index: badlandsHighGrass, IsomValue: 7, BrushSortOrder: 5, LinkId: 6, Name: "High Grass"},
	{Index: 8}, {Index: 9}, {Index: 10}, {Index: 11}, {Index: 12}, {Index: 13},
	{Index: badlandsAsphalt, IsomValue: 5, BrushSortOrder: 7, LinkId: 9, Name: "Asphalt"},
	{Index: badlandsRockyGround, IsomValue: 6, BrushSortOrder: 8, LinkId: 10, Name: "Rocky Ground"},
	{Index: 16}, {Index: 17},
	{Index: badlandsStructure, IsomValue: 8, BrushSortOrder: 6, LinkId: 7, Name: "Structure"},

	{Index: 19, IsomValue: 0},
	{Index: 20, IsomValue: 41},
	{Index: 21, IsomValue: 69},
	{Index: 22, IsomValue: 111}, {Index: 23}, {Index: 24}, {Index: 25}, {Index: 26},
	{Index: 27, IsomValue: 83},
	{Index: 28, IsomValue: 55}, {Index: 29}, {Index: 30},
	{Index: 31, IsomValue: 97}, {Index: 32}, {Index: 33},
	{Index: 34, IsomValue: 13},
	{Index: 35, IsomValue: 27},
}

var badlandsTerrainTypeMap = []uint16{
	5, 35, 0,
	35, 5, 2, 20, 27, 28, 34, 22, 0,
	2, 34, 35, 20, 27, 28, 22, 0,
	34, 2, 3, 20, 21, 27, 28, 35, 22, 0,
	3, 34, 21, 0,
	6, 20, 0,
	20, 6, 2, 35, 34, 27, 28, 22, 0,
	14, 27, 31, 0,
	27, 14, 20, 2, 35, 34, 28, 22, 0,
	15, 28, 0,
	28, 15, 2, 34, 35, 20, 27, 22, 0,
	7, 21, 0,
	21, 7, 3, 34, 0,
	18, 31, 0,
	31, 18, 14, 0,
	4, 22, 0,
	22, 4, 2, 34, 35, 20, 27, 28, 0,
	0,
}

// Space terrain-type indices.
const (
	spaceSpace           = 2
	spaceLowPlatform     = 8
	spaceRustyPit        = 9
	spacePlatform        = 3
	spaceDarkPlatform    = 11
	spacePlating         = 4
	spaceSolarArray      = 7
	spaceHighPlatform    = 5
	spaceHighPlating     = 6
	spaceElevatedCatwalk = 10

	spaceDefault = spacePlatform
)

var spaceTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 3},
	{Index: 1},
	{Index: spaceSpace, IsomValue: 1, LinkId: 1, Name: "Space"},
	{Index: spacePlatform, IsomValue: 2, BrushSortOrder: 3, LinkId: 3, Name: "Platform"},
	{Index: spacePlating, IsomValue: 11, BrushSortOrder: 5, LinkId: 4, Name: "Plating"},
	{Index: spaceHighPlatform, IsomValue: 4, BrushSortOrder: 7, LinkId: 5, Name: "High Platform"},
	{Index: spaceHighPlating, IsomValue: 12, BrushSortOrder: 8, LinkId: 6, Name: "High Plating"},
	{Index: spaceSolarArray, IsomValue: 8, BrushSortOrder: 6, LinkId: 7, Name: "Solar Array"},
	{Index: spaceLowPlatform, IsomValue: 9, BrushSortOrder: 1, LinkId: 8, Name: "Low Platform"},
	{Index: spaceRustyPit, IsomValue: 10, BrushSortOrder: 2, LinkId: 9, Name: "Rusty Pit"},
	{Index: spaceElevatedCatwalk, IsomValue: 13, BrushSortOrder: 9, LinkId: 10, Name: "Elevated Catwalk"},
	{Index: spaceDarkPlatform, IsomValue: 14, BrushSortOrder: 4, LinkId: 2, Name: "Dark Platform"},

	{Index: 12, IsomValue: 0},
	{Index: 13, IsomValue: 136},
	{Index: 14, IsomValue: 94},
	{Index: 15, IsomValue: 108},
	{Index: 16, IsomValue: 52},
	{Index: 17, IsomValue: 66},
	{Index: 18, IsomValue: 80},
	{Index: 19, IsomValue: 122},
	{Index: 20, IsomValue: 24},
	{Index: 21, IsomValue: 38},
}

var spaceTerrainTypeMap = []uint16{
	2, 20, 0,
	20, 2, 3, 16, 14, 21, 13, 0,
	3, 20, 21, 16, 17, 18, 14, 19, 13, 0,
	21, 3, 5, 14, 16, 15, 19, 20, 17, 13, 0,
	5, 21, 15, 0,
	7, 16, 0,
	16, 7, 3, 20, 21, 17, 18, 14, 19, 13, 0,
	8, 17, 0,
	17, 8, 3, 16, 14, 21, 13, 0,
	9, 18, 0,
	18, 9, 3, 16, 14, 13, 0,
	4, 14, 0,
	14, 4, 3, 20, 21, 16, 17, 18, 19, 13, 0,
	6, 15, 0,
	15, 6, 5, 21, 0,
	10, 19, 0,
	19, 10, 3, 16, 14, 21, 13, 0,
	11, 13, 0,
	13, 11, 3, 20, 21, 16, 17, 18, 14, 19, 0,
	0,
}

// Installation terrain-type indices.
const (
	installationSubstructure        = 2
	installationFloor               = 3
	installationRoof                = 6
	installationSubstructurePlating = 4
	installationPlating             = 5
	installationSubstructurePanels  = 8
	installationBottomlessPit       = 7

	installationDefault = installationFloor
)

var installationTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 8},
	{Index: 1},
	{Index: installationSubstructure, IsomValue: 1, LinkId: 1, Name: "Substructure"},
	{Index: installationFloor, IsomValue: 2, BrushSortOrder: 1, LinkId: 2, Name: "Floor"},
	{Index: installationSubstructurePlating, IsomValue: 4, BrushSortOrder: 3, LinkId: 4, Name: "Substructure Plating"},
	{Index: installationPlating, IsomValue: 5, BrushSortOrder: 4, LinkId: 5, Name: "Plating"},
	{Index: installationRoof, IsomValue: 3, BrushSortOrder: 2, LinkId: 3, Name: "Roof"},
	{Index: installationBottomlessPit, IsomValue: 7, BrushSortOrder: 6, LinkId: 7, Name: "Bottomless Pit"},
	{Index: installationSubstructurePanels, IsomValue: 6, BrushSortOrder: 5, LinkId: 6, Name: "Substructure Panels"},

	{Index: 9, IsomValue: 0},
	{Index: 10, IsomValue: 50},
	{Index: 11, IsomValue: 64},
	{Index: 12, IsomValue: 22},
	{Index: 13, IsomValue: 36},
	{Index: 14, IsomValue: 78},
	{Index: 15, IsomValue: 92},
}

var installationTerrainTypeMap = []uint16{
	2, 12, 10, 14, 15, 0,
	12, 2, 3, 10, 11, 13, 14, 15, 0,
	3, 12, 13, 11, 0,
	13, 6, 3, 11, 12, 0,
	6, 13, 0,
	4, 10, 0,
	10, 4, 2, 12, 14, 15, 0,
	5, 11, 0,
	11, 5, 3, 12, 13, 0,
	8, 14, 0,
	14, 8, 2, 12, 10, 15, 0,
	7, 15, 0,
	15, 7, 2, 12, 10, 14, 0,
	0,
}

// Ashworld terrain-type indices.
const (
	ashworldMagma      = 8
	ashworldDirt       = 2
	ashworldLava       = 3
	ashworldShale      = 6
	ashworldBrokenRock = 9
	ashworldHighDirt   = 4
	ashworldHighLava   = 5
	ashworldHighShale  = 7

	ashworldDefault = ashworldDirt
)

var ashworldTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 9},
	{Index: 1},
	{Index: ashworldDirt, IsomValue: 2, BrushSortOrder: 1, LinkId: 2, Name: "Dirt"},
	{Index: ashworldLava, IsomValue: 3, BrushSortOrder: 2, LinkId: 3, Name: "Lava"},
	{Index: ashworldHighDirt, IsomValue: 5, BrushSortOrder: 5, LinkId: 5, Name: "High Dirt"},
	{Index: ashworldHighLava, IsomValue: 6, BrushSortOrder: 6, LinkId: 6, Name: "High Lava"},
	{Index: ashworldShale, IsomValue: 4, BrushSortOrder: 3, LinkId: 4, Name: "Shale"},
	{Index: ashworldHighShale, IsomValue: 7, BrushSortOrder: 7, LinkId: 7, Name: "High Shale"},
	{Index: ashworldMagma, IsomValue: 1, LinkId: 1, Name: "Magma"},
	{Index: ashworldBrokenRock, IsomValue: 8, BrushSortOrder: 4, LinkId: 8, Name: "Broken Rock"},

	{Index: 10, IsomValue: 0},
	{Index: 11, IsomValue: 55},
	{Index: 12, IsomValue: 69},
	{Index: 13, IsomValue: 83},
	{Index: 14, IsomValue: 97},
	{Index: 15, IsomValue: 111},
	{Index: 16, IsomValue: 41},
	{Index: 17, IsomValue: 27},
}

var ashworldTerrainTypeMap = []uint16{
	8, 17, 0,
	17, 8, 2, 11, 13, 16, 15, 0,
	2, 17, 16, 11, 13, 15, 0,
	3, 11, 0,
	11, 3, 2, 17, 16, 13, 15, 0,
	6, 13, 0,
	13, 6, 2, 17, 16, 11, 15, 0,
	9, 15, 0,
	15, 9, 13, 2, 17, 16, 11, 0,
	16, 2, 4, 11, 13, 12, 14, 17, 15, 0,
	4, 16, 12, 14, 0,
	5, 12, 0,
	12, 5, 4, 16, 14, 0,
	7, 14, 0,
	14, 7, 4, 16, 12, 0,
	0,
}

// Jungle terrain-type indices. Desert, Arctic and Twilight reuse this
// compressed adjacency map verbatim (see jungleTerrainTypeMap below);
// their descriptor tables differ from Jungle's only in terrain names, and
// their default terrain types may differ.
const (
	jungleWater            = 5
	jungleDirt             = 2
	jungleMud              = 4
	jungleJungle           = 8
	jungleRockyGround      = 15
	jungleRuins            = 11
	jungleRaisedJungle     = 9
	jungleTemple           = 16
	jungleHighDirt         = 3
	jungleHighJungle       = 10
	jungleHighRuins        = 12
	jungleHighRaisedJungle = 13
	jungleHighTemple       = 17

	jungleDefault = jungleJungle
)

var jungleTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 14},
	{Index: 1},
	{Index: jungleDirt, IsomValue: 1, BrushSortOrder: 1, LinkId: 1, Name: "Dirt"},
	{Index: jungleHighDirt, IsomValue: 2, BrushSortOrder: 8, LinkId: 2, Name: "High Dirt"},
	{Index: jungleMud, IsomValue: 13, BrushSortOrder: 2, LinkId: 4, Name: "Mud"},
	{Index: jungleWater, IsomValue: 3, LinkId: 3, Name: "Water"}, {Index: 6}, {Index: 7},
	{Index: jungleJungle, IsomValue: 4, BrushSortOrder: 3, LinkId: 8, Name: "Jungle"},
	{Index: jungleRaisedJungle, IsomValue: 5, BrushSortOrder: 6, LinkId: 11, Name: "Raised Jungle"},
	{Index: jungleHighJungle, IsomValue: 9, BrushSortOrder: 9, LinkId: 14, Name: "High Jungle"},
	{Index: jungleRuins, IsomValue: 7, BrushSortOrder: 5, LinkId: 12, Name: "Ruins"},
	{Index: jungleHighRuins, IsomValue: 10, BrushSortOrder: 10, LinkId: 15, Name: "High Ruins"},
	{Index: jungleHighRaisedJungle, IsomValue: 11, BrushSortOrder: 11, LinkId: 16, Name: "High Raised Jungle"}, {Index: 14},
	{Index: jungleRockyGround, IsomValue: 6, BrushSortOrder: 4, LinkId: 10, Name: "Rocky Ground"},
	{Index: jungleTemple, IsomValue: 8, BrushSortOrder: 7, LinkId: 13, Name: "Temple"},
	{Index: jungleHighTemple, IsomValue: 12, BrushSortOrder: 12, LinkId: 17, Name: "High Temple"}, {Index: 18},

	{Index: 19, IsomValue: 0}, {Index: 20}, {Index: 21},
	{Index: 22, IsomValue: 171},
	{Index: 23, IsomValue: 45},
	{Index: 24, IsomValue: 115},
	{Index: 25, IsomValue: 87},
	{Index: 26, IsomValue: 129}, {Index: 27},
	{Index: 28, IsomValue: 59},
	{Index: 29, IsomValue: 73},
	{Index: 30, IsomValue: 143}, {Index: 31},
	{Index: 32, IsomValue: 101},
	{Index: 33, IsomValue: 157},
	{Index: 34, IsomValue: 17},
	{Index: 35, IsomValue: 31},
}

var jungleTerrainTypeMap = []uint16{
	5, 35, 0,
	35, 5, 2, 23, 28, 34, 22, 0,
	2, 34, 35, 23, 28, 22, 0,
	34, 2, 3, 24, 23, 28, 35, 22, 0,
	3, 34, 24, 0,
	8, 23, 29, 25, 32, 0,
	4, 22, 0,
	22, 4, 2, 34, 35, 23, 28, 0,
	23, 8, 2, 35, 34, 28, 25, 29, 22, 0,
	15, 28, 0,
	28, 15, 2, 34, 35, 23, 22, 0,
	9, 29, 0,
	29, 9, 8, 25, 32, 23, 0,
	11, 25, 0,
	25, 11, 8, 23, 29, 32, 0,
	16, 32, 0,
	32, 16, 8, 25, 29, 0,
	10, 24, 26, 30, 33, 0,
	24, 10, 3, 34, 26, 30, 0,
	12, 26, 0,
	26, 12, 10, 24, 30, 33, 0,
	13, 30, 0,
	30, 13, 10, 26, 24, 33, 0,
	17, 33, 0,
	33, 17, 10, 26, 30, 0,
	0,
}

// Desert shares Jungle's compressed adjacency list verbatim (the
// original spells this out as a Span alias rather than a copy).
const (
	desertTar                = 5
	desertDirt               = 2
	desertDriedMud           = 4
	desertSandDunes          = 8
	desertRockyGround        = 15
	desertCrags              = 11
	desertSandySunkenPit     = 9
	desertCompound           = 16
	desertHighDirt           = 3
	desertHighSandDunes      = 10
	desertHighCrags          = 12
	desertHighSandySunkenPit = 13
	desertHighCompound       = 17

	desertDefault = desertSandDunes
)

var desertTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 14},
	{Index: 1},
	{Index: desertDirt, IsomValue: 1, BrushSortOrder: 1, LinkId: 1, Name: "Dirt"},
	{Index: desertHighDirt, IsomValue: 2, BrushSortOrder: 8, LinkId: 2, Name: "High Dirt"},
	{Index: desertDriedMud, IsomValue: 13, BrushSortOrder: 2, LinkId: 4, Name: "Dried Mud"},
	{Index: desertTar, IsomValue: 3, LinkId: 3, Name: "Tar"}, {Index: 6}, {Index: 7},
	{Index: desertSandDunes, IsomValue: 4, BrushSortOrder: 3, LinkId: 8, Name: "Sand Dunes"},
	{Index: desertSandySunkenPit, IsomValue: 5, BrushSortOrder: 6, LinkId: 11, Name: "Sandy Sunken Pit"},
	{Index: desertHighSandDunes, IsomValue: 9, BrushSortOrder: 9, LinkId: 14, Name: "High Sand Dunes"},
	{Index: desertCrags, IsomValue: 7, BrushSortOrder: 5, LinkId: 12, Name: "Crags"},
	{Index: desertHighCrags, IsomValue: 10, BrushSortOrder: 10, LinkId: 15, Name: "High Crags"},
	{Index: desertHighSandySunkenPit, IsomValue: 11, BrushSortOrder: 11, LinkId: 16, Name: "High Sandy Sunken Pit"}, {Index: 14},
	{Index: desertRockyGround, IsomValue: 6, BrushSortOrder: 4, LinkId: 10, Name: "Rocky Ground"},
	{Index: desertCompound, IsomValue: 8, BrushSortOrder: 7, LinkId: 13, Name: "Compound"},
	{Index: desertHighCompound, IsomValue: 12, BrushSortOrder: 12, LinkId: 17, Name: "High Compound"}, {Index: 18},

	{Index: 19, IsomValue: 0}, {Index: 20}, {Index: 21},
	{Index: 22, IsomValue: 171},
	{Index: 23, IsomValue: 45},
	{Index: 24, IsomValue: 115},
	{Index: 25, IsomValue: 87},
	{Index: 26, IsomValue: 129}, {Index: 27},
	{Index: 28, IsomValue: 59},
	{Index: 29, IsomValue: 73},
	{Index: 30, IsomValue: 143}, {Index: 31},
	{Index: 32, IsomValue: 101},
	{Index: 33, IsomValue: 157},
	{Index: 34, IsomValue: 17},
	{Index: 35, IsomValue: 31},
}

// Arctic, like Desert, shares Jungle's compressed adjacency list.
const (
	arcticIce         = 5
	arcticSnow        = 2
	arcticMoguls      = 4
	arcticDirt        = 8
	arcticRockySnow   = 15
	arcticGrass       = 11
	arcticWater       = 9
	arcticOutpost     = 16
	arcticHighSnow    = 3
	arcticHighDirt    = 10
	arcticHighGrass   = 12
	arcticHighWater   = 13
	arcticHighOutpost = 17

	arcticDefault = arcticSnow
)

var arcticTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 14},
	{Index: 1},
	{Index: arcticSnow, IsomValue: 1, BrushSortOrder: 1, LinkId: 1, Name: "Snow"},
	{Index: arcticHighSnow, IsomValue: 2, BrushSortOrder: 8, LinkId: 2, Name: "High Snow"},
	{Index: arcticMoguls, IsomValue: 13, BrushSortOrder: 2, LinkId: 4, Name: "Moguls"},
	{Index: arcticIce, IsomValue: 3, LinkId: 3, Name: "Ice"}, {Index: 6}, {Index: 7},
	{Index: arcticDirt, IsomValue: 4, BrushSortOrder: 3, LinkId: 8, Name: "Dirt"},
	{Index: arcticWater, IsomValue: 5, BrushSortOrder: 6, LinkId: 11, Name: "Water"},
	{Index: arcticHighDirt, IsomValue: 9, BrushSortOrder: 9, LinkId: 14, Name: "High Dirt"},
	{Index: arcticGrass, IsomValue: 7, BrushSortOrder: 5, LinkId: 12, Name: "Grass"},
	{Index: arcticHighGrass, IsomValue: 10, BrushSortOrder: 10, LinkId: 15, Name: "High Grass"},
	{Index: arcticHighWater, IsomValue: 11, BrushSortOrder: 11, LinkId: 16, Name: "High Water"}, {Index: 14},
	{Index: arcticRockySnow, IsomValue: 6, BrushSortOrder: 4, LinkId: 10, Name: "Rocky Snow"},
	{Index: arcticOutpost, IsomValue: 8, BrushSortOrder: 7, LinkId: 13, Name: "Outpost"},
	{Index: arcticHighOutpost, IsomValue: 12, BrushSortOrder: 12, LinkId: 17, Name: "High Outpost"}, {Index: 18},

	{Index: 19, IsomValue: 0}, {Index: 20}, {Index: 21},
	{Index: 22, IsomValue: 171},
	{Index: 23, IsomValue: 45},
	{Index: 24, IsomValue: 115},
	{Index: 25, IsomValue: 87},
	{Index: 26, IsomValue: 129}, {Index: 27},
	{Index: 28, IsomValue: 59},
	{Index: 29, IsomValue: 73},
	{Index: 30, IsomValue: 143}, {Index: 31},
	{Index: 32, IsomValue: 101},
	{Index: 33, IsomValue: 157},
	{Index: 34, IsomValue: 17},
	{Index: 35, IsomValue: 31},
}

// Twilight, like Desert and Arctic, shares Jungle's compressed adjacency
// list.
const (
	twilightWater            = 5
	twilightDirt             = 2
	twilightMud              = 4
	twilightCrushedRock      = 8
	twilightCrevices         = 15
	twilightFlagstones       = 11
	twilightSunkenGround     = 9
	twilightBasilica         = 16
	twilightHighDirt         = 3
	twilightHighCrushedRock  = 10
	twilightHighFlagstones   = 12
	twilightHighSunkenGround = 13
	twilightHighBasilica     = 17

	twilightDefault = twilightDirt
)

var twilightTerrainTypeInfo = []TerrainTypeInfo{
	{Index: 0, IsomValue: 14},
	{Index: 1},
	{Index: twilightDirt, IsomValue: 1, BrushSortOrder: 1, LinkId: 1, Name: "Dirt"},
	{Index: twilightHighDirt, IsomValue: 2, BrushSortOrder: 8, LinkId: 2, Name: "High Dirt"},
	{Index: twilightMud, IsomValue: 13, BrushSortOrder: 2, LinkId: 4, Name: "Mud"},
	{Index: twilightWater, IsomValue: 3, LinkId: 3, Name: "Water"}, {Index: 6}, {Index: 7},
	{Index: twilightCrushedRock, IsomValue: 4, BrushSortOrder: 3, LinkId: 8, Name: "Crushed Rock"},
	{Index: twilightSunkenGround, IsomValue: 5, BrushSortOrder: 6, LinkId: 11, Name: "Sunken Ground"},
	{Index: twilightHighCrushedRock, IsomValue: 9, BrushSortOrder: 9, LinkId: 14, Name: "High Crushed Rock"},
	{Index: twilightFlagstones, IsomValue: 7, BrushSortOrder: 5, LinkId: 12, Name: "Flagstones"},
	{Index: twilightHighFlagstones, IsomValue: 10, BrushSortOrder: 10, LinkId: 15, Name: "High Flagstones"},
	{Index: twilightHighSunkenGround, IsomValue: 11, BrushSortOrder: 11, LinkId: 16, Name: "High Sunken Ground"}, {Index: 14},
	{Index: twilightCrevices, IsomValue: 6, BrushSortOrder: 4, LinkId: 10, Name: "Crevices"},
	{Index: twilightBasilica, IsomValue: 8, BrushSortOrder: 7, LinkId: 13, Name: "Basilica"},
	{Index: twilightHighBasilica, IsomValue: 12, BrushSortOrder: 12, LinkId: 17, Name: "High Basilica"}, {Index: 18},

	{Index: 19, IsomValue: 0}, {Index: 20}, {Index: 21},
	{Index: 22, IsomValue: 171},
	{Index: 23, IsomValue: 45},
	{Index: 24, IsomValue: 115},
	{Index: 25, IsomValue: 87},
	{Index: 26, IsomValue: 129}, {Index: 27},
	{Index: 28, IsomValue: 59},
	{Index: 29, IsomValue: 73},
	{Index: 30, IsomValue: 143}, {Index: 31},
	{Index: 32, IsomValue: 101},
	{Index: 33, IsomValue: 157},
	{Index: 34, IsomValue: 17},
	{Index: 35, IsomValue: 31},
}

// Brushes is the fixed catalog of built-in tileset terrain-type
// descriptor tables, indexed by BrushId.
var Brushes = [brushTotal]Brush{
	BrushBadlands:      {Name: "Badlands", TerrainTypeInfo: badlandsTerrainTypeInfo, TerrainTypeMap: badlandsTerrainTypeMap, DefaultTerrainIndex: badlandsDefault},
	BrushSpace:         {Name: "Space", TerrainTypeInfo: spaceTerrainTypeInfo, TerrainTypeMap: spaceTerrainTypeMap, DefaultTerrainIndex: spaceDefault},
	BrushInstallation:  {Name: "Installation", TerrainTypeInfo: installationTerrainTypeInfo, TerrainTypeMap: installationTerrainTypeMap, DefaultTerrainIndex: installationDefault},
	BrushAshworld:      {Name: "Ashworld", TerrainTypeInfo: ashworldTerrainTypeInfo, TerrainTypeMap: ashworldTerrainTypeMap, DefaultTerrainIndex: ashworldDefault},
	BrushJungle:        {Name: "Jungle", TerrainTypeInfo: jungleTerrainTypeInfo, TerrainTypeMap: jungleTerrainTypeMap, DefaultTerrainIndex: jungleDefault},
	BrushDesert:        {Name: "Desert", TerrainTypeInfo: desertTerrainTypeInfo, TerrainTypeMap: jungleTerrainTypeMap, DefaultTerrainIndex: desertDefault},
	BrushArctic:        {Name: "Arctic", TerrainTypeInfo: arcticTerrainTypeInfo, TerrainTypeMap: jungleTerrainTypeMap, DefaultTerrainIndex: arcticDefault},
	BrushTwilight:      {Name: "Twilight", TerrainTypeInfo: twilightTerrainTypeInfo, TerrainTypeMap: jungleTerrainTypeMap, DefaultTerrainIndex: twilightDefault},
}
