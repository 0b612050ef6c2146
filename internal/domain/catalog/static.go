// internal/domain/catalog/static.go
package catalog

var staticRecords = []Record{
	{Title: "Dogcat Pet Bed", Category: "Supplies", Image: "pictures/products/supplies1.png", Price: "₱450.00", Description: "Comfy, washable plush bed with raised sides."},
	{Title: "Monello Kitten DryFood 200g", Category: "Dry Cat Food", Image: "pictures/products/dfcmonello.png", Price: "₱220.00", Description: "Balanced nutrition for kittens with DHA."},
	{Title: "Royal Canin Adult Dry Food", Category: "Dry Cat Food", Image: "pictures/products/dfcroyalcanin.png", Price: "₱500.00", Description: "Indoor adult formula for digestion & coat."},
	{Title: "Yukon Beef Sachet Wet Food", Category: "Wet Dog Food", Image: "pictures/products/wetdogfood1.png", Price: "₱150.00", Description: "Tasty wet food in easy-serve sachets."},
	{Title: "Halo Meal Bites", Category: "Treats", Image: "pictures/products/streatshalo.png", Price: "₱75.00", Description: "Crunchy bite-sized treats for rewards."},
	{Title: "Gud Dog Food 2.5kg", Category: "Dry Dog Food", Image: "pictures/products/drydogfood1.png", Price: "₱1,500.00", Description: "Everyday kibble with essential nutrients."},
	{Title: "Seasonal Allergy Soft Chews", Category: "Supplements", Image: "pictures/products/supplements1.png", Price: "₱250.00", Description: "Soft chews supporting seasonal relief."},
	{Title: "Pedigree Dentastix Large", Category: "Dental Treats", Image: "pictures/products/dtreatsdentastix.png", Price: "₱115.00", Description: "Dental chews to help reduce tartar."},
	{Title: "Pedigree Wet Food", Category: "Wet Dog Food", Image: "pictures/products/wetdogfood2.png", Price: "₱550.00", Description: "Complete & balanced meaty wet meal."},
	{Title: "Whiskas Chicken Adult", Category: "Wet Cat Food", Image: "pictures/products/wetcatfood2.png", Price: "₱250.00", Description: "Savory chicken wet food for adult cats."},
	{Title: "Cocopup Dog Harness", Category: "Accessories", Image: "pictures/products/accdogharness.png", Price: "₱790.00", Description: "Adjustable padded harness for comfy walks."},
	{Title: "Orijen Adult Dog Food", Category: "Dry Dog Food", Image: "pictures/products/drydogfood2.png", Price: "₱990.00", Description: "Protein-rich kibble with fresh ingredients."},
	{Title: "RC Feline Weight Care", Category: "Wet Cat Food", Image: "pictures/products/wetcatfood1.png", Price: "₱325.00", Description: "Wet formula to help maintain ideal weight."},
	{Title: "Sleeky Chewy Stick Snacks", Category: "Dog Treats", Image: "pictures/products/streatsstick.png", Price: "₱140.00", Description: "Chewy sticks ideal for training rewards."},
	{Title: "Purina Dentalife Large", Category: "Dental Treats", Image: "pictures/products/dtreatsdentalife.png", Price: "₱130.00", Description: "Porous sticks to clean hard-to-reach teeth."},
	{Title: "Purina Felix Crispies", Category: "Cat Treats", Image: "pictures/products/dctfelixcrispies.png", Price: "₱175.00", Description: "Airy, crunchy treats bursting with flavor."},
	{Title: "Purina Friskies Party Mix", Category: "Cat Treats", Image: "pictures/products/drycattreats2.png", Price: "₱200.00", Description: "Colorful crunchy treats for cats."},
	{Title: "Churu Creamy Purée 3-Flavor", Category: "Cat Treats", Image: "pictures/products/wetcattreats1.png", Price: "₱150.00", Description: "Lickable creamy treats cats love."},
	{Title: "Puddonia Lickable Treats", Category: "Cat Treats", Image: "pictures/products/wetcattreats2.png", Price: "₱250.00", Description: "Value pack of smooth lickable treats."},
	{Title: "Petlab Co. Probiotic for Dogs", Category: "Supplements", Image: "pictures/products/supplements2.png", Price: "₱530.00", Description: "Daily probiotic support for dogs."},
	{Title: "Lysine Supplement for Cats", Category: "Supplements", Image: "pictures/products/supplements3.png", Price: "₱470.00", Description: "Supports respiratory & eye health."},
	{Title: "Digestive Probiotics for Cats", Category: "Supplements", Image: "pictures/products/supplements4.png", Price: "₱450.00", Description: "Targeted probiotics for cats digestion."},
	{Title: "Donut-Shaped Pet Chew Toy", Category: "Toys", Image: "pictures/products/toys2.png", Price: "₱75.00", Description: "Durable rubber donut for chew & fetch."},
	{Title: "Plush Toys Set", Category: "Toys", Image: "pictures/products/toys3.png", Price: "₱190.00", Description: "Soft plush bundle with squeakers."},
	{Title: "Whisker Feather Cat Toy", Category: "Toys", Image: "pictures/products/toys4.png", Price: "₱150.00", Description: "Interactive feather toy for chasing."},
	{Title: "Mouse Toys (Set of 10)", Category: "Toys", Image: "pictures/products/toys1.png", Price: "₱100.00", Description: "Lightweight fabric mice with rattles."},
}

// StaticRecords returns a copy of the built-in product list
func StaticRecords() []Record {
	out := make([]Record, len(staticRecords))
	copy(out, staticRecords)
	return out
}
