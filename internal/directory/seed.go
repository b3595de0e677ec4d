package directory

import "community-seva/internal/eligibility"

// Districts of Andhra Pradesh and Telangana offered by the district filter.
var seedDistricts = []string{
	"Alluri Sitarama Raju", "Anakapalli", "Ananthapur", "Bapatla", "Chittoor",
	"East Godavari", "Eluru", "Guntur", "Kadapa", "Kakinada", "Konaseema",
	"Krishna", "Kurnool", "Nandyal", "Nellore", "NTR", "Palnadu", "Prakasam",
	"Srikakulam", "Tirupati", "Visakhapatnam", "Vizianagaram", "West Godavari",

	"Adilabad", "Bhadradri Kothagudem", "Hanamkonda", "Hyderabad", "Jagtial",
	"Jangaon", "Jayashankar Bhupalpally", "Jogulamba Gadwal", "Kamareddy",
	"Karimnagar", "Khammam", "Kumuram Bheem Asifabad", "Mahabubabad",
	"Mahabubnagar", "Mancherial", "Medak", "Medchal Malkajgiri", "Mulugu",
	"Nagarkurnool", "Nalgonda", "Narayanpet", "Nirmal", "Nizamabad",
	"Peddapalli", "Rajanna Sircilla", "Rangareddy", "Sangareddy", "Siddipet",
	"Suryapet", "Vikarabad", "Wanaparthy", "Warangal", "Yadadri Bhuvanagiri",
}

var seedDonors = []Donor{
	{ID: "d1", Name: "Rohit Kumar", BloodGroup: eligibility.GroupAPos, Location: "Vijayawada", District: "Krishna"},
	{ID: "d2", Name: "Sravani", BloodGroup: eligibility.GroupBPos, Location: "Eluru", District: "West Godavari"},
	{ID: "d3", Name: "Mahesh", BloodGroup: eligibility.GroupONeg, Location: "Bhimavaram", District: "West Godavari"},
	{ID: "d4", Name: "Priya Reddy", BloodGroup: eligibility.GroupAPos, Location: "Guntur", District: "Guntur"},
	{ID: "d5", Name: "Ramesh", BloodGroup: eligibility.GroupABPos, Location: "Rajahmundry", District: "East Godavari"},
	{ID: "d6", Name: "Lakshmi Narayana", BloodGroup: eligibility.GroupOPos, Location: "Nuzvid", District: "Krishna"},
	{ID: "d7", Name: "Sunitha", BloodGroup: eligibility.GroupBNeg, Location: "Tanuku", District: "West Godavari"},
	{ID: "d8", Name: "Chaitanya", BloodGroup: eligibility.GroupANeg, Location: "Tenali", District: "Guntur"},
	{ID: "d9", Name: "Harika", BloodGroup: eligibility.GroupOPos, Location: "Kakinada", District: "East Godavari"},
	{ID: "d10", Name: "Sandeep", BloodGroup: eligibility.GroupBPos, Location: "Visakhapatnam", District: "Visakhapatnam"},
	{ID: "d11", Name: "Meghana", BloodGroup: eligibility.GroupABNeg, Location: "Mangalagiri", District: "Guntur"},
	{ID: "d12", Name: "Venkatesh", BloodGroup: eligibility.GroupONeg, Location: "Ongole", District: "Prakasam"},
	{ID: "d13", Name: "Alekhya", BloodGroup: eligibility.GroupAPos, Location: "Machilipatnam", District: "Krishna"},
	{ID: "d14", Name: "Rohini", BloodGroup: eligibility.GroupBPos, Location: "Amalapuram", District: "East Godavari"},
	{ID: "d15", Name: "Karthik", BloodGroup: eligibility.GroupOPos, Location: "Vizianagaram", District: "Vizianagaram"},
}

func inventory(aPos, aNeg, bPos, bNeg, abPos, abNeg, oPos, oNeg int) Inventory {
	return Inventory{
		eligibility.GroupAPos:  aPos,
		eligibility.GroupANeg:  aNeg,
		eligibility.GroupBPos:  bPos,
		eligibility.GroupBNeg:  bNeg,
		eligibility.GroupABPos: abPos,
		eligibility.GroupABNeg: abNeg,
		eligibility.GroupOPos:  oPos,
		eligibility.GroupONeg:  oNeg,
	}
}

func seedBanks() []Bank {
	return []Bank{
		{
			ID: "b1", Name: "Krishna District Blood Bank", Location: "Vijayawada", District: "Krishna",
			Phone: "+91 9876543210", Email: "krishna.bloodbank@example.com",
			Inventory: inventory(15, 8, 12, 5, 7, 3, 20, 10),
		},
		{
			ID: "b2", Name: "West Godavari Red Cross", Location: "Eluru", District: "West Godavari",
			Phone: "+91 9123456780", Email: "wg.redcross@example.com",
			Inventory: inventory(10, 4, 8, 3, 5, 2, 15, 6),
		},
		{
			ID: "b3", Name: "Guntur Government Blood Bank", Location: "Guntur", District: "Guntur",
			Phone: "+91 9032441188", Email: "guntur.bb@example.com",
			Inventory: inventory(18, 6, 10, 4, 8, 2, 25, 12),
		},
		{
			ID: "b4", Name: "Rajahmundry Red Cross", Location: "Rajahmundry", District: "East Godavari",
			Phone: "+91 8899776655", Email: "eg.redcross@example.com",
			Inventory: inventory(12, 5, 14, 6, 4, 1, 18, 7),
		},
	}
}
