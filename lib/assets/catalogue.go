package assets

// Catalogue data. Every asset is authored in a 0 0 100 100 viewport. Path
// order matters: paths[0] is the head, paths[1] is the torso, so the first
// two paths together form the "head and torso" part the rotation puzzles
// show. Catalogue ids only need to be unique within their own catalogue.

var vp100 = Viewport{MinX: 0, MinY: 0, Width: 100, Height: 100}

var silhouettes = []VectorAsset{
	{
		ID:          "atlas",
		DisplayName: "Atlas",
		Viewport:    vp100,
		Paths: []string{
			"M40 6h20v14h-20z",
			"M28 20h44v34h-44z",
			"M30 54h14v40h-14z M56 54h14v40h-14z",
			"M16 22h10v26h-10z M74 22h10v26h-10z",
		},
	},
	{
		ID:          "raven",
		DisplayName: "Raven",
		Viewport:    vp100,
		Paths: []string{
			"M36 10l28 6-8 12h-20z",
			"M30 28h40v24h-40z",
			"M34 52l10 42h-12l-6-42z M66 52l6 42h-12l-10-42z",
			"M70 30l20-6v10l-20 6z",
		},
	},
	{
		ID:          "marauder",
		DisplayName: "Marauder",
		Viewport:    vp100,
		Paths: []string{
			"M30 14h40l-6 10h-28z",
			"M24 24h52v26h-52z",
			"M30 50h16v44h-16z M54 50h16v44h-16z",
			"M8 26h14v8h-14z M78 26h14v8h-14z",
		},
	},
	{
		ID:          "locust",
		DisplayName: "Locust",
		Viewport:    vp100,
		Paths: []string{
			"M42 16a8 8 0 1 1 16 0a8 8 0 1 1 -16 0z",
			"M34 26h32v18h-32z",
			"M36 44l-8 48h10l6-48z M64 44l8 48h-10l-6-48z",
			"M26 28h6v10h-6z M68 28h6v10h-6z",
		},
	},
	{
		ID:          "shadowcat",
		DisplayName: "Shadow Cat",
		Viewport:    vp100,
		Paths: []string{
			"M38 8l24 4v12h-24z",
			"M30 24h40v28h-40z",
			"M32 52h12v38h-18z M68 52h-12v38h18z",
			"M72 20h16v10h-16z",
		},
	},
	{
		ID:          "urbanmech",
		DisplayName: "UrbanMech",
		Viewport:    vp100,
		Paths: []string{
			"M32 10h36v10h-36z",
			"M26 20h48v44h-48z",
			"M32 64h14v28h-14z M54 64h14v28h-14z",
			"M10 34h14v10h-14z",
		},
	},
	{
		ID:          "timberwolf",
		DisplayName: "Timber Wolf",
		Viewport:    vp100,
		Paths: []string{
			"M40 12h20l-4 10h-12z",
			"M26 22h48v30h-48z",
			"M30 52h16v42h-16z M54 52h16v42h-16z",
			"M12 14h12v20h-12z M76 14h12v20h-12z",
		},
	},
	{
		ID:          "catapult",
		DisplayName: "Catapult",
		Viewport:    vp100,
		Paths: []string{
			"M44 20h12v8h-12z",
			"M28 28h44v22h-44z",
			"M34 50l-10 44h14l8-44z M66 50l10 44h-14l-8-44z",
			"M18 10h18v16h-18z M64 10h18v16h-18z",
		},
	},
	{
		ID:          "hunchback",
		DisplayName: "Hunchback",
		Viewport:    vp100,
		Paths: []string{
			"M36 14h16v12h-16z",
			"M26 26h48v30h-48z",
			"M32 56h14v36h-14z M54 56h14v36h-14z",
			"M58 8h26v20h-26z",
		},
	},
	{
		ID:          "cicada",
		DisplayName: "Cicada",
		Viewport:    vp100,
		Paths: []string{
			"M44 10l12 4-2 10h-10z",
			"M36 24h28v20h-28z",
			"M38 44l-12 48h12l10-48z M62 44l12 48h-12l-10-48z",
			"M30 26h-8v8h8z M70 26h8v8h-8z",
		},
	},
}

var archetypes = []Archetype{
	{
		VectorAsset: VectorAsset{
			ID:          "scout",
			DisplayName: "Scout",
			Viewport:    vp100,
			Paths: []string{
				"M42 12h16v10h-16z",
				"M34 22h32v22h-32z",
				"M38 44l-8 44h10l6-44z M62 44l8 44h-10l-6-44z",
			},
		},
		LoadoutID: "laser-battery",
	},
	{
		VectorAsset: VectorAsset{
			ID:          "brawler",
			DisplayName: "Brawler",
			Viewport:    vp100,
			Paths: []string{
				"M38 10h24v12h-24z",
				"M26 22h48v34h-48z",
				"M30 56h16v36h-16z M54 56h16v36h-16z",
			},
		},
		LoadoutID: "twin-autocannon",
	},
	{
		VectorAsset: VectorAsset{
			ID:          "sniper",
			DisplayName: "Sniper",
			Viewport:    vp100,
			Paths: []string{
				"M40 14h14v10h-14z",
				"M32 24h30v26h-30z",
				"M36 50h10v42h-10z M52 50h10v42h-10z",
			},
		},
		LoadoutID: "gauss-rifle",
	},
	{
		VectorAsset: VectorAsset{
			ID:          "juggernaut",
			DisplayName: "Juggernaut",
			Viewport:    vp100,
			Paths: []string{
				"M34 8h32v14h-32z",
				"M22 22h56v38h-56z",
				"M28 60h18v32h-18z M54 60h18v32h-18z",
			},
		},
		LoadoutID: "mortar-pod",
	},
	{
		VectorAsset: VectorAsset{
			ID:          "skirmisher",
			DisplayName: "Skirmisher",
			Viewport:    vp100,
			Paths: []string{
				"M44 12l14 6-4 8h-10z",
				"M34 26h30v20h-30z",
				"M36 46l-10 46h12l8-46z M60 46l10 46h-12l-8-46z",
			},
		},
		LoadoutID: "flamer-array",
	},
	{
		VectorAsset: VectorAsset{
			ID:          "artillery",
			DisplayName: "Artillery",
			Viewport:    vp100,
			Paths: []string{
				"M42 18h16v8h-16z",
				"M28 26h44v28h-44z",
				"M34 54h14v38h-14z M52 54h14v38h-14z",
			},
		},
		LoadoutID: "lrm-rack",
	},
}

var loadouts = []VectorAsset{
	{
		ID:          "laser-battery",
		DisplayName: "Laser Battery",
		Viewport:    vp100,
		Paths: []string{
			"M20 40h60v6h-60z M20 54h60v6h-60z",
			"M12 36h10v28h-10z",
		},
	},
	{
		ID:          "twin-autocannon",
		DisplayName: "Twin Autocannon",
		Viewport:    vp100,
		Paths: []string{
			"M16 34h56v10h-56z M16 56h56v10h-56z",
			"M72 30h16v40h-16z",
		},
	},
	{
		ID:          "gauss-rifle",
		DisplayName: "Gauss Rifle",
		Viewport:    vp100,
		Paths: []string{
			"M10 46h70v8h-70z",
			"M62 38h26v24h-26z",
		},
	},
	{
		ID:          "mortar-pod",
		DisplayName: "Mortar Pod",
		Viewport:    vp100,
		Paths: []string{
			"M26 30h48v40h-48z",
			"M32 22h8v8h-8z M46 22h8v8h-8z M60 22h8v8h-8z",
		},
	},
	{
		ID:          "flamer-array",
		DisplayName: "Flamer Array",
		Viewport:    vp100,
		Paths: []string{
			"M24 44h40v12h-40z",
			"M64 40l24 10-24 10z",
		},
	},
	{
		ID:          "lrm-rack",
		DisplayName: "LRM Rack",
		Viewport:    vp100,
		Paths: []string{
			"M28 28h44v44h-44z",
			"M34 34h8v8h-8z M48 34h8v8h-8z M62 34h8v8h-8z M34 48h8v8h-8z M48 48h8v8h-8z M62 48h8v8h-8z",
		},
	},
}
