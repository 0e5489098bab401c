package catalog

import "github.com/rapidresponse/leadsite/internal/model"

var defaultServices = []model.Service{
	{Slug: "emergency-plumbing", Name: "Emergency Plumbing", Description: "24/7 emergency plumbing for burst pipes, major leaks and flooding. Fast response across Melbourne."},
	{Slug: "blocked-drains", Name: "Blocked Drains", Description: "High-pressure jetting and CCTV drain inspections to clear blocked drains and sewers for good."},
	{Slug: "hot-water-systems", Name: "Hot Water Systems", Description: "Repair, replacement and installation of gas, electric, solar and heat pump hot water systems."},
	{Slug: "leak-detection", Name: "Leak Detection", Description: "Non-invasive leak detection using thermal imaging and acoustic equipment to find hidden leaks."},
	{Slug: "gas-fitting", Name: "Gas Fitting", Description: "Licensed gas fitting for appliances, cooktops and heaters, plus gas leak detection and repairs."},
	{Slug: "bathroom-renovations", Name: "Bathroom Renovations", Description: "Complete bathroom renovation plumbing from rough-in to fit-off, done on time and on budget."},
	{Slug: "toilet-repairs", Name: "Toilet Repairs", Description: "Fast repairs for running, leaking and blocked toilets, cistern replacements and new installations."},
	{Slug: "tap-installation", Name: "Tap Installation", Description: "Supply and installation of kitchen, bathroom and laundry taps, including dripping tap repairs."},
	{Slug: "pipe-relining", Name: "Pipe Relining", Description: "No-dig pipe relining that repairs cracked and root-damaged pipes without excavation."},
	{Slug: "stormwater-drainage", Name: "Stormwater Drainage", Description: "Stormwater drain installation, repairs and clearing to protect your property from flooding."},
	{Slug: "kitchen-plumbing", Name: "Kitchen Plumbing", Description: "Sinks, dishwashers, waste disposal units and filtered water taps installed and repaired."},
	{Slug: "roof-plumbing", Name: "Roof Plumbing", Description: "Gutter, downpipe and roof flashing repairs and replacements to keep your home watertight."},
}

var defaultLocations = []model.Location{
	{Slug: "melbourne-cbd", Name: "Melbourne CBD"},
	{Slug: "carlton", Name: "Carlton"},
	{Slug: "fitzroy", Name: "Fitzroy"},
	{Slug: "collingwood", Name: "Collingwood"},
	{Slug: "richmond", Name: "Richmond"},
	{Slug: "south-yarra", Name: "South Yarra"},
	{Slug: "prahran", Name: "Prahran"},
	{Slug: "st-kilda", Name: "St Kilda"},
	{Slug: "brunswick", Name: "Brunswick"},
	{Slug: "northcote", Name: "Northcote"},
	{Slug: "footscray", Name: "Footscray"},
	{Slug: "docklands", Name: "Docklands"},
	{Slug: "port-melbourne", Name: "Port Melbourne"},
	{Slug: "south-melbourne", Name: "South Melbourne"},
	{Slug: "hawthorn", Name: "Hawthorn"},
	{Slug: "kew", Name: "Kew"},
	{Slug: "camberwell", Name: "Camberwell"},
	{Slug: "box-hill", Name: "Box Hill"},
	{Slug: "doncaster", Name: "Doncaster"},
	{Slug: "glen-waverley", Name: "Glen Waverley"},
	{Slug: "brighton", Name: "Brighton"},
	{Slug: "elwood", Name: "Elwood"},
	{Slug: "williamstown", Name: "Williamstown"},
	{Slug: "essendon", Name: "Essendon"},
	{Slug: "coburg", Name: "Coburg"},
	{Slug: "preston", Name: "Preston"},
	{Slug: "heidelberg", Name: "Heidelberg"},
	{Slug: "ringwood", Name: "Ringwood"},
	{Slug: "dandenong", Name: "Dandenong"},
	{Slug: "frankston", Name: "Frankston"},
	{Slug: "werribee", Name: "Werribee"},
	{Slug: "sunshine", Name: "Sunshine"},
}

// Default returns the built-in catalog used when no catalog file is configured.
func Default() *Store {
	s, err := New(defaultServices, defaultLocations)
	if err != nil {
		panic(err)
	}
	return s
}
