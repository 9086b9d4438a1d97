package mcc

import "spendwatch/internal/models"

// Entry is one row of the merchant-category-code table: what the code
// means and which spending category it rolls up into.
type Entry struct {
	Code        string
	Description string
	Category    models.Category
	Subcategory string
}

// table maps 4-digit numeric MCC strings to their entries. It is
// initialized once at package load and never mutated afterwards.
var table = map[string]Entry{
	// Agricultural and contracted services
	"0742": {"0742", "Veterinary Services", models.CategoryHealthcare, "Veterinary"},
	"0763": {"0763", "Agricultural Cooperatives", models.CategoryBusiness, ""},
	"0780": {"0780", "Landscaping and Horticultural Services", models.CategoryHomeGarden, "Landscaping"},
	"1520": {"1520", "General Contractors - Residential and Commercial", models.CategoryProfessional, "Contractors"},
	"1711": {"1711", "Heating, Plumbing, Air Conditioning Contractors", models.CategoryProfessional, "Contractors"},
	"1731": {"1731", "Electrical Contractors", models.CategoryProfessional, "Contractors"},
	"1740": {"1740", "Masonry, Stonework, Tile Setting, Plastering", models.CategoryProfessional, "Contractors"},
	"1750": {"1750", "Carpentry Contractors", models.CategoryProfessional, "Contractors"},
	"1761": {"1761", "Roofing, Siding, Sheet Metal Work Contractors", models.CategoryProfessional, "Contractors"},
	"1771": {"1771", "Concrete Work Contractors", models.CategoryProfessional, "Contractors"},
	"1799": {"1799", "Special Trade Contractors", models.CategoryProfessional, "Contractors"},
	"2741": {"2741", "Miscellaneous Publishing and Printing", models.CategoryProfessional, "Printing"},
	"2791": {"2791", "Typesetting, Plate Making and Related Services", models.CategoryProfessional, "Printing"},
	"2842": {"2842", "Specialty Cleaning, Polishing and Sanitation Preparations", models.CategoryProfessional, ""},

	// Airlines
	"3000": {"3000", "United Airlines", models.CategoryTravelLodging, "Airlines"},
	"3001": {"3001", "American Airlines", models.CategoryTravelLodging, "Airlines"},
	"3005": {"3005", "British Airways", models.CategoryTravelLodging, "Airlines"},
	"3007": {"3007", "Air France", models.CategoryTravelLodging, "Airlines"},
	"3008": {"3008", "KLM Royal Dutch Airlines", models.CategoryTravelLodging, "Airlines"},
	"3010": {"3010", "Lufthansa", models.CategoryTravelLodging, "Airlines"},
	"3015": {"3015", "Swiss International Air Lines", models.CategoryTravelLodging, "Airlines"},
	"3026": {"3026", "Emirates", models.CategoryTravelLodging, "Airlines"},
	"3034": {"3034", "Austrian Airlines", models.CategoryTravelLodging, "Airlines"},
	"3042": {"3042", "Finnair", models.CategoryTravelLodging, "Airlines"},
	"3047": {"3047", "Turkish Airlines", models.CategoryTravelLodging, "Airlines"},
	"3058": {"3058", "Delta Air Lines", models.CategoryTravelLodging, "Airlines"},
	"3075": {"3075", "Singapore Airlines", models.CategoryTravelLodging, "Airlines"},
	"3077": {"3077", "Thai Airways", models.CategoryTravelLodging, "Airlines"},
	"3082": {"3082", "Korean Air", models.CategoryTravelLodging, "Airlines"},
	"3136": {"3136", "Qatar Airways", models.CategoryTravelLodging, "Airlines"},
	"3144": {"3144", "Virgin Atlantic", models.CategoryTravelLodging, "Airlines"},
	"3156": {"3156", "SAS Scandinavian Airlines", models.CategoryTravelLodging, "Airlines"},
	"3174": {"3174", "JetBlue Airways", models.CategoryTravelLodging, "Airlines"},
	"3245": {"3245", "EasyJet", models.CategoryTravelLodging, "Airlines"},
	"3246": {"3246", "Ryanair", models.CategoryTravelLodging, "Airlines"},
	"3247": {"3247", "Gol Airlines", models.CategoryTravelLodging, "Airlines"},

	// Car rental
	"3351": {"3351", "Affiliated Auto Rental", models.CategoryTravelLodging, "Car Rental"},
	"3357": {"3357", "Hertz", models.CategoryTravelLodging, "Car Rental"},
	"3366": {"3366", "Budget Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3381": {"3381", "Europcar", models.CategoryTravelLodging, "Car Rental"},
	"3387": {"3387", "Alamo Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3389": {"3389", "Avis Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3390": {"3390", "Dollar Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3393": {"3393", "National Car Rental", models.CategoryTravelLodging, "Car Rental"},
	"3395": {"3395", "Thrifty Car Rental", models.CategoryTravelLodging, "Car Rental"},
	"3398": {"3398", "Econo-Car Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3420": {"3420", "Ansa International Rent-A-Car", models.CategoryTravelLodging, "Car Rental"},
	"3441": {"3441", "Sixt Car Rental", models.CategoryTravelLodging, "Car Rental"},

	// Hotels and lodging
	"3501": {"3501", "Holiday Inns", models.CategoryTravelLodging, "Hotels"},
	"3502": {"3502", "Best Western Hotels", models.CategoryTravelLodging, "Hotels"},
	"3503": {"3503", "Sheraton Hotels", models.CategoryTravelLodging, "Hotels"},
	"3504": {"3504", "Hilton Hotels", models.CategoryTravelLodging, "Hotels"},
	"3509": {"3509", "Marriott Hotels", models.CategoryTravelLodging, "Hotels"},
	"3512": {"3512", "InterContinental Hotels", models.CategoryTravelLodging, "Hotels"},
	"3520": {"3520", "Meridien Hotels", models.CategoryTravelLodging, "Hotels"},
	"3533": {"3533", "Hotel Ibis", models.CategoryTravelLodging, "Hotels"},
	"3543": {"3543", "Four Seasons Hotels", models.CategoryTravelLodging, "Hotels"},
	"3546": {"3546", "Hotel Sofitel", models.CategoryTravelLodging, "Hotels"},
	"3570": {"3570", "Forum Hotels", models.CategoryTravelLodging, "Hotels"},
	"3577": {"3577", "Mandarin Oriental Hotels", models.CategoryTravelLodging, "Hotels"},
	"3583": {"3583", "Hotel Mercure", models.CategoryTravelLodging, "Hotels"},
	"3590": {"3590", "Fairmont Hotels", models.CategoryTravelLodging, "Hotels"},
	"3615": {"3615", "Travelodge", models.CategoryTravelLodging, "Hotels"},
	"3640": {"3640", "Hyatt Hotels", models.CategoryTravelLodging, "Hotels"},
	"3642": {"3642", "Novotel Hotels", models.CategoryTravelLodging, "Hotels"},
	"3649": {"3649", "Radisson Hotels", models.CategoryTravelLodging, "Hotels"},
	"3665": {"3665", "Hampton Inns", models.CategoryTravelLodging, "Hotels"},
	"3690": {"3690", "Courtyard by Marriott", models.CategoryTravelLodging, "Hotels"},
	"3710": {"3710", "The Ritz-Carlton", models.CategoryTravelLodging, "Hotels"},
	"3750": {"3750", "Crowne Plaza Hotels", models.CategoryTravelLodging, "Hotels"},
	"3780": {"3780", "Disney Resorts", models.CategoryTravelLodging, "Hotels"},

	// Transportation
	"4011": {"4011", "Railroads - Freight", models.CategoryTransportation, ""},
	"4111": {"4111", "Local and Suburban Commuter Passenger Transportation", models.CategoryTransportation, "Public Transit"},
	"4112": {"4112", "Passenger Railways", models.CategoryTransportation, "Rail"},
	"4119": {"4119", "Ambulance Services", models.CategoryHealthcare, "Ambulance"},
	"4121": {"4121", "Taxicabs and Limousines", models.CategoryTransportation, "Taxi"},
	"4131": {"4131", "Bus Lines", models.CategoryTransportation, "Bus"},
	"4214": {"4214", "Motor Freight Carriers and Trucking", models.CategoryTransportation, "Freight"},
	"4215": {"4215", "Courier Services", models.CategoryTransportation, "Courier"},
	"4225": {"4225", "Public Warehousing and Storage", models.CategoryBusiness, "Storage"},
	"4411": {"4411", "Steamship and Cruise Lines", models.CategoryTravelLodging, "Cruise"},
	"4457": {"4457", "Boat Rentals and Leasing", models.CategoryEntertainment, "Boating"},
	"4468": {"4468", "Marinas, Marine Service and Supplies", models.CategoryEntertainment, "Boating"},
	"4511": {"4511", "Airlines and Air Carriers", models.CategoryTravelLodging, "Airlines"},
	"4582": {"4582", "Airports, Flying Fields and Airport Terminals", models.CategoryTravelLodging, "Airports"},
	"4722": {"4722", "Travel Agencies and Tour Operators", models.CategoryTravelLodging, "Travel Agencies"},
	"4784": {"4784", "Tolls and Bridge Fees", models.CategoryTransportation, "Tolls"},
	"4789": {"4789", "Transportation Services", models.CategoryTransportation, ""},

	// Utilities and telecom
	"4812": {"4812", "Telecommunication Equipment and Telephone Sales", models.CategoryUtilities, "Telecom Equipment"},
	"4814": {"4814", "Telecommunication Services", models.CategoryUtilities, "Telecom"},
	"4816": {"4816", "Computer Network and Information Services", models.CategoryUtilities, "Internet"},
	"4821": {"4821", "Telegraph Services", models.CategoryUtilities, ""},
	"4829": {"4829", "Wire Transfers and Money Orders", models.CategoryFinancial, "Money Transfer"},
	"4899": {"4899", "Cable, Satellite and Other Pay Television and Radio", models.CategoryUtilities, "Cable TV"},
	"4900": {"4900", "Utilities - Electric, Gas, Water, Sanitary", models.CategoryUtilities, "Utilities"},

	// Retail
	"5013": {"5013", "Motor Vehicle Supplies and New Parts", models.CategoryAutomotive, "Parts"},
	"5021": {"5021", "Office and Commercial Furniture", models.CategoryRetailShopping, "Furniture"},
	"5039": {"5039", "Construction Materials", models.CategoryHomeGarden, "Materials"},
	"5044": {"5044", "Photographic, Photocopy, Microfilm Equipment", models.CategoryRetailShopping, "Photo"},
	"5045": {"5045", "Computers, Peripherals and Software", models.CategoryRetailShopping, "Electronics"},
	"5065": {"5065", "Electrical Parts and Equipment", models.CategoryRetailShopping, "Electronics"},
	"5072": {"5072", "Hardware Equipment and Supplies", models.CategoryHomeGarden, "Hardware"},
	"5085": {"5085", "Industrial Supplies", models.CategoryBusiness, ""},
	"5094": {"5094", "Precious Stones, Metals, Watches and Jewelry", models.CategoryRetailShopping, "Jewelry"},
	"5111": {"5111", "Stationery, Office Supplies, Printing and Writing Paper", models.CategoryRetailShopping, "Office Supplies"},
	"5122": {"5122", "Drugs, Drug Proprietaries and Druggist Sundries", models.CategoryHealthcare, "Pharmacy"},
	"5192": {"5192", "Books, Periodicals and Newspapers", models.CategoryRetailShopping, "Books"},
	"5193": {"5193", "Florists Supplies, Nursery Stock and Flowers", models.CategoryHomeGarden, "Florist"},
	"5200": {"5200", "Home Supply Warehouse Stores", models.CategoryHomeGarden, "Home Improvement"},
	"5211": {"5211", "Lumber and Building Materials Stores", models.CategoryHomeGarden, "Building Materials"},
	"5231": {"5231", "Glass, Paint and Wallpaper Stores", models.CategoryHomeGarden, "Paint"},
	"5251": {"5251", "Hardware Stores", models.CategoryHomeGarden, "Hardware"},
	"5261": {"5261", "Nurseries and Lawn and Garden Supply Stores", models.CategoryHomeGarden, "Garden"},
	"5271": {"5271", "Mobile Home Dealers", models.CategoryHomeGarden, ""},
	"5300": {"5300", "Wholesale Clubs", models.CategoryRetailShopping, "Wholesale"},
	"5309": {"5309", "Duty Free Stores", models.CategoryRetailShopping, "Duty Free"},
	"5310": {"5310", "Discount Stores", models.CategoryRetailShopping, "Discount"},
	"5311": {"5311", "Department Stores", models.CategoryRetailShopping, "Department Stores"},
	"5331": {"5331", "Variety Stores", models.CategoryRetailShopping, ""},
	"5399": {"5399", "Miscellaneous General Merchandise", models.CategoryRetailShopping, ""},
	"5411": {"5411", "Grocery Stores and Supermarkets", models.CategoryFoodDining, "Groceries"},
	"5422": {"5422", "Freezer and Locker Meat Provisioners", models.CategoryFoodDining, "Groceries"},
	"5441": {"5441", "Candy, Nut and Confectionery Stores", models.CategoryFoodDining, "Confectionery"},
	"5451": {"5451", "Dairy Products Stores", models.CategoryFoodDining, "Groceries"},
	"5462": {"5462", "Bakeries", models.CategoryFoodDining, "Bakery"},
	"5499": {"5499", "Miscellaneous Food Stores and Specialty Markets", models.CategoryFoodDining, "Groceries"},
	"5511": {"5511", "Car and Truck Dealers - New and Used", models.CategoryAutomotive, "Dealers"},
	"5521": {"5521", "Car and Truck Dealers - Used Only", models.CategoryAutomotive, "Dealers"},
	"5531": {"5531", "Auto and Home Supply Stores", models.CategoryAutomotive, "Supplies"},
	"5532": {"5532", "Automotive Tire Stores", models.CategoryAutomotive, "Tires"},
	"5533": {"5533", "Automotive Parts and Accessories Stores", models.CategoryAutomotive, "Parts"},
	"5541": {"5541", "Service Stations with or without Ancillary Services", models.CategoryAutomotive, "Fuel"},
	"5542": {"5542", "Automated Fuel Dispensers", models.CategoryAutomotive, "Fuel"},
	"5551": {"5551", "Boat Dealers", models.CategoryEntertainment, "Boating"},
	"5571": {"5571", "Motorcycle Shops and Dealers", models.CategoryAutomotive, "Motorcycles"},
	"5599": {"5599", "Miscellaneous Automotive Dealers", models.CategoryAutomotive, ""},
	"5611": {"5611", "Men's and Boys' Clothing and Accessories Stores", models.CategoryRetailShopping, "Clothing"},
	"5621": {"5621", "Women's Ready-to-Wear Stores", models.CategoryRetailShopping, "Clothing"},
	"5631": {"5631", "Women's Accessory and Specialty Shops", models.CategoryRetailShopping, "Clothing"},
	"5641": {"5641", "Children's and Infants' Wear Stores", models.CategoryRetailShopping, "Clothing"},
	"5651": {"5651", "Family Clothing Stores", models.CategoryRetailShopping, "Clothing"},
	"5655": {"5655", "Sports and Riding Apparel Stores", models.CategoryRetailShopping, "Clothing"},
	"5661": {"5661", "Shoe Stores", models.CategoryRetailShopping, "Shoes"},
	"5681": {"5681", "Furriers and Fur Shops", models.CategoryRetailShopping, "Clothing"},
	"5691": {"5691", "Men's and Women's Clothing Stores", models.CategoryRetailShopping, "Clothing"},
	"5697": {"5697", "Tailors, Seamstresses, Mending and Alterations", models.CategoryPersonalCare, "Tailoring"},
	"5699": {"5699", "Miscellaneous Apparel and Accessory Shops", models.CategoryRetailShopping, "Clothing"},
	"5712": {"5712", "Furniture, Home Furnishings and Equipment Stores", models.CategoryHomeGarden, "Furniture"},
	"5713": {"5713", "Floor Covering Stores", models.CategoryHomeGarden, ""},
	"5714": {"5714", "Drapery, Window Covering and Upholstery Stores", models.CategoryHomeGarden, ""},
	"5718": {"5718", "Fireplaces, Fireplace Screens and Accessories Stores", models.CategoryHomeGarden, ""},
	"5719": {"5719", "Miscellaneous House Furnishing Specialty Stores", models.CategoryHomeGarden, "Furnishings"},
	"5722": {"5722", "Household Appliance Stores", models.CategoryHomeGarden, "Appliances"},
	"5732": {"5732", "Electronics Stores", models.CategoryRetailShopping, "Electronics"},
	"5733": {"5733", "Music Stores - Instruments, Pianos, Sheet Music", models.CategoryRetailShopping, "Music"},
	"5734": {"5734", "Computer Software Stores", models.CategoryRetailShopping, "Software"},
	"5735": {"5735", "Record Stores", models.CategoryRetailShopping, "Music"},
	"5811": {"5811", "Caterers", models.CategoryFoodDining, "Catering"},
	"5812": {"5812", "Eating Places and Restaurants", models.CategoryFoodDining, "Restaurants"},
	"5813": {"5813", "Drinking Places - Bars, Taverns, Nightclubs, Lounges", models.CategoryFoodDining, "Bars"},
	"5814": {"5814", "Fast Food Restaurants", models.CategoryFoodDining, "Fast Food"},
	"5912": {"5912", "Drug Stores and Pharmacies", models.CategoryHealthcare, "Pharmacy"},
	"5921": {"5921", "Package Stores - Beer, Wine and Liquor", models.CategoryFoodDining, "Liquor"},
	"5931": {"5931", "Used Merchandise and Secondhand Stores", models.CategoryRetailShopping, "Secondhand"},
	"5932": {"5932", "Antique Shops", models.CategoryRetailShopping, "Antiques"},
	"5940": {"5940", "Bicycle Shops - Sales and Service", models.CategoryRetailShopping, "Sporting Goods"},
	"5941": {"5941", "Sporting Goods Stores", models.CategoryRetailShopping, "Sporting Goods"},
	"5942": {"5942", "Book Stores", models.CategoryRetailShopping, "Books"},
	"5943": {"5943", "Stationery, Office and School Supply Stores", models.CategoryRetailShopping, "Office Supplies"},
	"5944": {"5944", "Jewelry, Watches, Clocks and Silverware Stores", models.CategoryRetailShopping, "Jewelry"},
	"5945": {"5945", "Hobby, Toy and Game Shops", models.CategoryRetailShopping, "Toys"},
	"5946": {"5946", "Camera and Photographic Supply Stores", models.CategoryRetailShopping, "Photo"},
	"5947": {"5947", "Gift, Card, Novelty and Souvenir Shops", models.CategoryRetailShopping, "Gifts"},
	"5948": {"5948", "Luggage and Leather Goods Stores", models.CategoryRetailShopping, "Luggage"},
	"5949": {"5949", "Sewing, Needlework, Fabric and Piece Goods Stores", models.CategoryRetailShopping, "Fabric"},
	"5950": {"5950", "Glassware and Crystal Stores", models.CategoryRetailShopping, ""},
	"5960": {"5960", "Direct Marketing - Insurance Services", models.CategoryFinancial, "Insurance"},
	"5962": {"5962", "Direct Marketing - Travel-Related Arrangement Services", models.CategoryTravelLodging, ""},
	"5964": {"5964", "Direct Marketing - Catalog Merchants", models.CategoryRetailShopping, "Mail Order"},
	"5965": {"5965", "Direct Marketing - Combination Catalog and Retail Merchants", models.CategoryRetailShopping, "Mail Order"},
	"5967": {"5967", "Direct Marketing - Inbound Telemarketing Merchants", models.CategoryRetailShopping, ""},
	"5968": {"5968", "Direct Marketing - Continuity/Subscription Merchants", models.CategoryRetailShopping, "Subscriptions"},
	"5969": {"5969", "Direct Marketing - Other Direct Marketers", models.CategoryRetailShopping, ""},
	"5970": {"5970", "Artist Supply and Craft Shops", models.CategoryRetailShopping, "Crafts"},
	"5971": {"5971", "Art Dealers and Galleries", models.CategoryRetailShopping, "Art"},
	"5972": {"5972", "Stamp and Coin Stores", models.CategoryRetailShopping, "Collectibles"},
	"5973": {"5973", "Religious Goods Stores", models.CategoryRetailShopping, ""},
	"5975": {"5975", "Hearing Aids - Sales, Service and Supplies", models.CategoryHealthcare, "Medical Devices"},
	"5976": {"5976", "Orthopedic Goods and Prosthetic Devices", models.CategoryHealthcare, "Medical Devices"},
	"5977": {"5977", "Cosmetic Stores", models.CategoryPersonalCare, "Cosmetics"},
	"5983": {"5983", "Fuel Dealers - Fuel Oil, Wood, Coal, Liquefied Petroleum", models.CategoryUtilities, "Heating Fuel"},
	"5992": {"5992", "Florists", models.CategoryRetailShopping, "Flowers"},
	"5993": {"5993", "Cigar Stores and Stands", models.CategoryRetailShopping, "Tobacco"},
	"5994": {"5994", "News Dealers and Newsstands", models.CategoryRetailShopping, "News"},
	"5995": {"5995", "Pet Shops, Pet Foods and Supplies Stores", models.CategoryRetailShopping, "Pets"},
	"5996": {"5996", "Swimming Pools - Sales and Service", models.CategoryHomeGarden, "Pools"},
	"5999": {"5999", "Miscellaneous and Specialty Retail Stores", models.CategoryRetailShopping, ""},

	// Financial services
	"6010": {"6010", "Financial Institutions - Manual Cash Disbursements", models.CategoryFinancial, "Cash Advance"},
	"6011": {"6011", "Financial Institutions - Automated Cash Disbursements", models.CategoryFinancial, "ATM"},
	"6012": {"6012", "Financial Institutions - Merchandise and Services", models.CategoryFinancial, "Banking"},
	"6051": {"6051", "Non-Financial Institutions - Foreign Currency, Money Orders", models.CategoryFinancial, "Currency Exchange"},
	"6211": {"6211", "Securities - Brokers and Dealers", models.CategoryFinancial, "Investments"},
	"6300": {"6300", "Insurance Sales, Underwriting and Premiums", models.CategoryFinancial, "Insurance"},
	"6513": {"6513", "Real Estate Agents and Managers - Rentals", models.CategoryFinancial, "Rent"},
	"6536": {"6536", "MoneySend Intracountry", models.CategoryFinancial, "Money Transfer"},
	"6537": {"6537", "MoneySend Intercountry", models.CategoryFinancial, "Money Transfer"},
	"6540": {"6540", "Stored Value Card Purchase and Load", models.CategoryFinancial, "Prepaid"},

	// Lodging (direct)
	"7011": {"7011", "Hotels, Motels, Resorts and Central Reservation Services", models.CategoryTravelLodging, "Hotels"},
	"7012": {"7012", "Timeshares", models.CategoryTravelLodging, ""},
	"7032": {"7032", "Sporting and Recreational Camps", models.CategoryEntertainment, "Camps"},
	"7033": {"7033", "Trailer Parks and Campgrounds", models.CategoryTravelLodging, "Camping"},

	// Personal and business services
	"7210": {"7210", "Laundry, Cleaning and Garment Services", models.CategoryPersonalCare, "Laundry"},
	"7211": {"7211", "Laundry Services - Family and Commercial", models.CategoryPersonalCare, "Laundry"},
	"7216": {"7216", "Dry Cleaners", models.CategoryPersonalCare, "Dry Cleaning"},
	"7217": {"7217", "Carpet and Upholstery Cleaning", models.CategoryHomeGarden, "Cleaning"},
	"7221": {"7221", "Photographic Studios", models.CategoryPersonalCare, "Photography"},
	"7230": {"7230", "Beauty and Barber Shops", models.CategoryPersonalCare, "Hair"},
	"7251": {"7251", "Shoe Repair Shops and Shoe Shine Parlors", models.CategoryPersonalCare, ""},
	"7261": {"7261", "Funeral Services and Crematories", models.CategoryProfessional, ""},
	"7273": {"7273", "Dating and Escort Services", models.CategoryPersonalCare, ""},
	"7276": {"7276", "Tax Preparation Services", models.CategoryProfessional, "Tax"},
	"7277": {"7277", "Counseling Services - Debt, Marriage, Personal", models.CategoryProfessional, "Counseling"},
	"7278": {"7278", "Buying and Shopping Services and Clubs", models.CategoryRetailShopping, ""},
	"7296": {"7296", "Clothing Rental", models.CategoryPersonalCare, ""},
	"7297": {"7297", "Massage Parlors", models.CategoryPersonalCare, "Massage"},
	"7298": {"7298", "Health and Beauty Spas", models.CategoryPersonalCare, "Spa"},
	"7299": {"7299", "Miscellaneous Personal Services", models.CategoryPersonalCare, ""},
	"7311": {"7311", "Advertising Services", models.CategoryBusiness, "Advertising"},
	"7333": {"7333", "Commercial Photography, Art and Graphics", models.CategoryBusiness, ""},
	"7338": {"7338", "Quick Copy, Reproduction and Blueprinting Services", models.CategoryBusiness, "Printing"},
	"7342": {"7342", "Exterminating and Disinfecting Services", models.CategoryHomeGarden, "Pest Control"},
	"7349": {"7349", "Cleaning, Maintenance and Janitorial Services", models.CategoryHomeGarden, "Cleaning"},
	"7361": {"7361", "Employment Agencies and Temporary Help Services", models.CategoryBusiness, "Employment"},
	"7372": {"7372", "Computer Programming and Data Processing Services", models.CategoryBusiness, "IT Services"},
	"7375": {"7375", "Information Retrieval Services", models.CategoryBusiness, "IT Services"},
	"7379": {"7379", "Computer Maintenance and Repair Services", models.CategoryBusiness, "IT Services"},
	"7392": {"7392", "Management, Consulting and Public Relations Services", models.CategoryBusiness, "Consulting"},
	"7393": {"7393", "Detective and Protective Agencies, Security Services", models.CategoryBusiness, "Security"},
	"7394": {"7394", "Equipment, Tool, Furniture and Appliance Rental", models.CategoryBusiness, "Rental"},
	"7399": {"7399", "Business Services", models.CategoryBusiness, ""},
	"7512": {"7512", "Automobile Rental Agency", models.CategoryTravelLodging, "Car Rental"},
	"7513": {"7513", "Truck and Utility Trailer Rentals", models.CategoryTransportation, "Truck Rental"},
	"7523": {"7523", "Parking Lots and Garages", models.CategoryTransportation, "Parking"},
	"7531": {"7531", "Automotive Body Repair Shops", models.CategoryAutomotive, "Repair"},
	"7534": {"7534", "Tire Retreading and Repair Shops", models.CategoryAutomotive, "Tires"},
	"7535": {"7535", "Automotive Paint Shops", models.CategoryAutomotive, "Repair"},
	"7538": {"7538", "Automotive Service Shops", models.CategoryAutomotive, "Repair"},
	"7542": {"7542", "Car Washes", models.CategoryAutomotive, "Car Wash"},
	"7549": {"7549", "Towing Services", models.CategoryAutomotive, "Towing"},
	"7622": {"7622", "Electronics Repair Shops", models.CategoryProfessional, "Repair"},
	"7623": {"7623", "Air Conditioning and Refrigeration Repair Shops", models.CategoryProfessional, "Repair"},
	"7629": {"7629", "Electrical and Small Appliance Repair Shops", models.CategoryProfessional, "Repair"},
	"7631": {"7631", "Watch, Clock and Jewelry Repair", models.CategoryProfessional, "Repair"},
	"7641": {"7641", "Furniture Reupholstery, Repair and Refinishing", models.CategoryProfessional, "Repair"},
	"7692": {"7692", "Welding Services", models.CategoryProfessional, ""},
	"7699": {"7699", "Miscellaneous Repair Shops and Related Services", models.CategoryProfessional, "Repair"},

	// Entertainment
	"7800": {"7800", "Government-Owned Lotteries (US)", models.CategoryEntertainment, "Gambling"},
	"7801": {"7801", "Government-Licensed Casinos (US)", models.CategoryEntertainment, "Gambling"},
	"7829": {"7829", "Motion Picture and Video Tape Production and Distribution", models.CategoryEntertainment, ""},
	"7832": {"7832", "Motion Picture Theaters", models.CategoryEntertainment, "Cinema"},
	"7841": {"7841", "Video Tape Rental Stores", models.CategoryEntertainment, "Video"},
	"7911": {"7911", "Dance Halls, Studios and Schools", models.CategoryEntertainment, "Dance"},
	"7922": {"7922", "Theatrical Producers and Ticket Agencies", models.CategoryEntertainment, "Theatre"},
	"7929": {"7929", "Bands, Orchestras and Miscellaneous Entertainers", models.CategoryEntertainment, "Music"},
	"7932": {"7932", "Billiard and Pool Establishments", models.CategoryEntertainment, ""},
	"7933": {"7933", "Bowling Alleys", models.CategoryEntertainment, "Bowling"},
	"7941": {"7941", "Commercial Sports, Professional Sports Clubs, Athletic Fields", models.CategoryEntertainment, "Sports"},
	"7991": {"7991", "Tourist Attractions and Exhibits", models.CategoryEntertainment, "Attractions"},
	"7992": {"7992", "Public Golf Courses", models.CategoryEntertainment, "Golf"},
	"7993": {"7993", "Video Amusement Game Supplies", models.CategoryEntertainment, "Gaming"},
	"7994": {"7994", "Video Game Arcades and Establishments", models.CategoryEntertainment, "Gaming"},
	"7995": {"7995", "Betting, Casino Gambling, Lottery Tickets", models.CategoryEntertainment, "Gambling"},
	"7996": {"7996", "Amusement Parks, Circuses, Carnivals and Fortune Tellers", models.CategoryEntertainment, "Amusement Parks"},
	"7997": {"7997", "Membership Clubs - Sports, Recreation, Athletic", models.CategoryEntertainment, "Fitness"},
	"7998": {"7998", "Aquariums, Seaquariums and Dolphinariums", models.CategoryEntertainment, "Attractions"},
	"7999": {"7999", "Recreation Services", models.CategoryEntertainment, ""},

	// Healthcare
	"8011": {"8011", "Doctors and Physicians", models.CategoryHealthcare, "Doctors"},
	"8021": {"8021", "Dentists and Orthodontists", models.CategoryHealthcare, "Dental"},
	"8031": {"8031", "Osteopaths", models.CategoryHealthcare, ""},
	"8041": {"8041", "Chiropractors", models.CategoryHealthcare, "Chiropractic"},
	"8042": {"8042", "Optometrists and Ophthalmologists", models.CategoryHealthcare, "Eye Care"},
	"8043": {"8043", "Opticians, Optical Goods and Eyeglasses", models.CategoryHealthcare, "Eye Care"},
	"8049": {"8049", "Podiatrists and Chiropodists", models.CategoryHealthcare, ""},
	"8050": {"8050", "Nursing and Personal Care Facilities", models.CategoryHealthcare, "Care Facilities"},
	"8062": {"8062", "Hospitals", models.CategoryHealthcare, "Hospitals"},
	"8071": {"8071", "Medical and Dental Laboratories", models.CategoryHealthcare, "Laboratories"},
	"8099": {"8099", "Medical Services and Health Practitioners", models.CategoryHealthcare, ""},
	"8111": {"8111", "Legal Services and Attorneys", models.CategoryProfessional, "Legal"},

	// Education
	"8211": {"8211", "Elementary and Secondary Schools", models.CategoryEducation, "Schools"},
	"8220": {"8220", "Colleges, Universities, Professional Schools", models.CategoryEducation, "Universities"},
	"8241": {"8241", "Correspondence Schools", models.CategoryEducation, ""},
	"8244": {"8244", "Business and Secretarial Schools", models.CategoryEducation, ""},
	"8249": {"8249", "Vocational and Trade Schools", models.CategoryEducation, "Vocational"},
	"8299": {"8299", "Schools and Educational Services", models.CategoryEducation, ""},

	// Charitable, civic and professional organizations
	"8351": {"8351", "Child Care Services", models.CategoryPersonalCare, "Child Care"},
	"8398": {"8398", "Charitable and Social Service Organizations", models.CategoryCharitable, "Charity"},
	"8641": {"8641", "Civic, Social and Fraternal Associations", models.CategoryCharitable, "Associations"},
	"8651": {"8651", "Political Organizations", models.CategoryCharitable, ""},
	"8661": {"8661", "Religious Organizations", models.CategoryCharitable, "Religious"},
	"8675": {"8675", "Automobile Associations", models.CategoryAutomotive, "Associations"},
	"8699": {"8699", "Membership Organizations", models.CategoryCharitable, ""},
	"8734": {"8734", "Testing Laboratories - Non-Medical", models.CategoryProfessional, "Laboratories"},
	"8911": {"8911", "Architectural, Engineering and Surveying Services", models.CategoryProfessional, "Engineering"},
	"8931": {"8931", "Accounting, Auditing and Bookkeeping Services", models.CategoryProfessional, "Accounting"},
	"8999": {"8999", "Professional Services", models.CategoryProfessional, ""},

	// Government
	"9211": {"9211", "Court Costs, Including Alimony and Child Support", models.CategoryGovernment, "Courts"},
	"9222": {"9222", "Fines", models.CategoryGovernment, "Fines"},
	"9223": {"9223", "Bail and Bond Payments", models.CategoryGovernment, ""},
	"9311": {"9311", "Tax Payments", models.CategoryGovernment, "Taxes"},
	"9399": {"9399", "Government Services", models.CategoryGovernment, ""},
	"9402": {"9402", "Postal Services - Government Only", models.CategoryGovernment, "Postal"},
	"9405": {"9405", "Intra-Government Purchases - Government Only", models.CategoryGovernment, ""},
	"9702": {"9702", "Emergency Services (GCAS)", models.CategoryGovernment, ""},
	"9950": {"9950", "Intra-Company Purchases", models.CategoryBusiness, ""},
}

// TableSize returns the number of exact-match entries.
func TableSize() int {
	return len(table)
}

// Lookup returns the exact-match entry for a normalized 4-digit code.
func Lookup(code string) (Entry, bool) {
	e, ok := table[code]
	return e, ok
}
