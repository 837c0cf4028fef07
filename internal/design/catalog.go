package design

var catalog = []Design{
	{ID: "modern-minimal", Name: "Modern Minimal", Description: "Clean and contemporary design with bold typography",
		Primary: MustHex("#000000"), Secondary: MustHex("#ffffff"), Accent: MustHex("#666666"), FontFamily: "Inter", Layout: LayoutModern},
	{ID: "corporate-blue", Name: "Corporate Blue", Description: "Professional design with blue color scheme",
		Primary: MustHex("#1e40af"), Secondary: MustHex("#dbeafe"), Accent: MustHex("#3b82f6"), FontFamily: "Helvetica", Layout: LayoutClassic},
	{ID: "creative-purple", Name: "Creative Purple", Description: "Bold and artistic design for creative professionals",
		Primary: MustHex("#7e22ce"), Secondary: MustHex("#f3e8ff"), Accent: MustHex("#a855f7"), FontFamily: "Arial", Layout: LayoutBold},
	{ID: "eco-green", Name: "Eco Green", Description: "Sustainable and fresh design with green accents",
		Primary: MustHex("#15803d"), Secondary: MustHex("#dcfce7"), Accent: MustHex("#22c55e"), FontFamily: "Helvetica", Layout: LayoutMinimal},
	{ID: "luxury-gold", Name: "Luxury Gold", Description: "Elegant design with gold accents for premium services",
		Primary: MustHex("#854d0e"), Secondary: MustHex("#fef9c3"), Accent: MustHex("#eab308"), FontFamily: "Helvetica", Layout: LayoutElegant},
	{ID: "tech-slate", Name: "Tech Slate", Description: "Modern tech-inspired design with slate colors",
		Primary: MustHex("#334155"), Secondary: MustHex("#f1f5f9"), Accent: MustHex("#64748b"), FontFamily: "Inter", Layout: LayoutModern},
	{ID: "coral-breeze", Name: "Coral Breeze", Description: "Fresh and vibrant design with coral accents",
		Primary: MustHex("#be123c"), Secondary: MustHex("#ffe4e6"), Accent: MustHex("#fb7185"), FontFamily: "Arial", Layout: LayoutBold},
	{ID: "nordic-frost", Name: "Nordic Frost", Description: "Clean Scandinavian-inspired design",
		Primary: MustHex("#0c4a6e"), Secondary: MustHex("#f0f9ff"), Accent: MustHex("#38bdf8"), FontFamily: "Helvetica", Layout: LayoutMinimal},
	{ID: "vintage-brown", Name: "Vintage Brown", Description: "Classic vintage-inspired design with warm tones",
		Primary: MustHex("#78350f"), Secondary: MustHex("#fef3c7"), Accent: MustHex("#d97706"), FontFamily: "Georgia", Layout: LayoutClassic},
	{ID: "urban-gray", Name: "Urban Gray", Description: "Contemporary urban design with grayscale palette",
		Primary: MustHex("#18181b"), Secondary: MustHex("#f4f4f5"), Accent: MustHex("#71717a"), FontFamily: "Inter", Layout: LayoutModern},
	{ID: "rose-elegance", Name: "Rose Elegance", Description: "Sophisticated design with rose gold accents",
		Primary: MustHex("#9f1239"), Secondary: MustHex("#fff1f2"), Accent: MustHex("#fb7185"), FontFamily: "Helvetica", Layout: LayoutElegant},
	{ID: "ocean-blue", Name: "Ocean Blue", Description: "Calming design with ocean-inspired colors",
		Primary: MustHex("#0e7490"), Secondary: MustHex("#ecfeff"), Accent: MustHex("#06b6d4"), FontFamily: "Arial", Layout: LayoutClassic},
	{ID: "forest-green", Name: "Forest Green", Description: "Natural and organic design with forest tones",
		Primary: MustHex("#14532d"), Secondary: MustHex("#f0fdf4"), Accent: MustHex("#16a34a"), FontFamily: "Helvetica", Layout: LayoutMinimal},
	{ID: "midnight-pro", Name: "Midnight Pro", Description: "Professional dark theme with subtle accents",
		Primary: MustHex("#020617"), Secondary: MustHex("#f8fafc"), Accent: MustHex("#475569"), FontFamily: "Inter", Layout: LayoutModern},
	{ID: "sunset-orange", Name: "Sunset Orange", Description: "Warm and energetic design with sunset colors",
		Primary: MustHex("#c2410c"), Secondary: MustHex("#fff7ed"), Accent: MustHex("#fb923c"), FontFamily: "Arial", Layout: LayoutBold},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, d := range catalog {
		m[d.ID] = i
	}
	return m
}()

// Catalog returns a copy of the designs in display order.
func Catalog() []Design {
	out := make([]Design, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the first catalog entry.
func Default() Design {
	return catalog[0]
}

// Lookup finds a design by id.
func Lookup(id string) (Design, bool) {
	i, ok := byID[id]
	if !ok {
		return Design{}, false
	}
	return catalog[i], true
}
