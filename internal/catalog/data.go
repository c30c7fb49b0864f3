package catalog

// Static reference data for supported cities, known risk zones, and
// evacuation points. Descriptions are kept in Indonesian as published.

var cities = []City{
	{ID: "jakarta", Name: "Jakarta", Lat: -6.2088, Lng: 106.8456, Province: "DKI Jakarta", BMKGCode: "31.71.01.1001"},
	{ID: "surabaya", Name: "Surabaya", Lat: -7.2575, Lng: 112.7521, Province: "Jawa Timur", BMKGCode: "31.78.01.1001"},
	{ID: "bandung", Name: "Bandung", Lat: -6.9175, Lng: 107.6191, Province: "Jawa Barat", BMKGCode: "32.73.01.1001"},
	{ID: "medan", Name: "Medan", Lat: 3.5952, Lng: 98.6722, Province: "Sumatera Utara", BMKGCode: "12.71.01.1001"},
	{ID: "semarang", Name: "Semarang", Lat: -6.9667, Lng: 110.4208, Province: "Jawa Tengah", BMKGCode: "33.74.01.1001"},
	{ID: "makassar", Name: "Makassar", Lat: -5.1427, Lng: 119.4128, Province: "Sulawesi Selatan", BMKGCode: "73.71.01.1001"},
	{ID: "palembang", Name: "Palembang", Lat: -2.9913, Lng: 104.7618, Province: "Sumatera Selatan", BMKGCode: "16.71.01.1001"},
	{ID: "tangerang", Name: "Tangerang", Lat: -6.1781, Lng: 106.6299, Province: "Banten", BMKGCode: "36.73.01.1001"},
	{ID: "depok", Name: "Depok", Lat: -6.4025, Lng: 106.7942, Province: "Jawa Barat", BMKGCode: "32.71.01.1004"},
	{ID: "bogor", Name: "Bogor", Lat: -6.5950, Lng: 106.8162, Province: "Jawa Barat", BMKGCode: "32.71.01.1001"},
	{ID: "yogyakarta", Name: "Yogyakarta", Lat: -7.7956, Lng: 110.3695, Province: "DI Yogyakarta", BMKGCode: "34.74.01.1001"},
	{ID: "malang", Name: "Malang", Lat: -7.9785, Lng: 112.6311, Province: "Jawa Timur", BMKGCode: "31.73.01.1007"},
	{ID: "solo", Name: "Solo", Lat: -7.5755, Lng: 110.8243, Province: "Jawa Tengah", BMKGCode: "33.71.01.1001"},
	{ID: "bekasi", Name: "Bekasi", Lat: -6.2297, Lng: 106.9853, Province: "Jawa Barat", BMKGCode: "32.71.01.1002"},
	{ID: "denpasar", Name: "Denpasar", Lat: -8.6525, Lng: 115.2192, Province: "Bali", BMKGCode: "51.71.01.1001"},
	{ID: "pontianak", Name: "Pontianak", Lat: -0.0227, Lng: 109.3425, Province: "Kalimantan Barat", BMKGCode: "61.71.01.1001"},
	{ID: "banjarmasin", Name: "Banjarmasin", Lat: -3.3194, Lng: 114.5908, Province: "Kalimantan Selatan", BMKGCode: "63.71.01.1001"},
	{ID: "padang", Name: "Padang", Lat: -0.9484, Lng: 100.3617, Province: "Sumatera Barat", BMKGCode: "13.71.01.1001"},
	{ID: "pekanbaru", Name: "Pekanbaru", Lat: 0.5071, Lng: 101.4478, Province: "Riau", BMKGCode: "14.71.01.1001"},
	{ID: "jambi", Name: "Jambi", Lat: -1.4852, Lng: 103.6158, Province: "Jambi"},
}

var riskZones = []RiskZone{
	// Jakarta
	{Name: "Kali Ciliwung", Lat: -6.1950, Lng: 106.8500, Radius: 800, Risk: "high", City: "jakarta", Type: "flood", Description: "Sungai utama Jakarta, sering banjir"},
	{Name: "Kali Angke", Lat: -6.1700, Lng: 106.7500, Radius: 500, Risk: "high", City: "jakarta", Type: "flood", Description: "Daerah rawan banjir"},
	{Name: "Kali Banjir", Lat: -6.2300, Lng: 106.9000, Radius: 600, Risk: "medium", City: "jakarta", Type: "flood", Description: "Area genangan air"},
	{Name: "Muara Baru", Lat: -6.1100, Lng: 106.7500, Radius: 700, Risk: "high", City: "jakarta", Type: "flood", Description: "Banjir rob dari laut"},
	{Name: "Pluit", Lat: -6.1100, Lng: 106.7800, Radius: 500, Risk: "medium", City: "jakarta", Type: "flood", Description: "Daerah rendah"},

	// Bandung
	{Name: "Kawasan Bandung Utara", Lat: -6.8500, Lng: 107.5500, Radius: 1200, Risk: "high", City: "bandung", Type: "landslide", Description: "Area lereng gunung"},
	{Name: "Cipanjalu", Lat: -6.7800, Lng: 107.5200, Radius: 800, Risk: "high", City: "bandung", Type: "landslide", Description: "Daerah longsor aktif"},
	{Name: "Ciwidey", Lat: -7.0500, Lng: 107.3500, Radius: 600, Risk: "medium", City: "bandung", Type: "landslide", Description: "Kawah gunung berapi"},
	{Name: "Sungai Brantas", Lat: -6.9200, Lng: 107.6500, Radius: 500, Risk: "medium", City: "bandung", Type: "flood", Description: "Sungai utama"},

	// Bogor
	{Name: "Gunung Gede", Lat: -6.7800, Lng: 106.9500, Radius: 1000, Risk: "high", City: "bogor", Type: "landslide", Description: "Gunungapi aktif"},
	{Name: "Sukabaya", Lat: -6.6000, Lng: 106.7500, Radius: 800, Risk: "high", City: "bogor", Type: "flood", Description: "Daerah banjir"},
	{Name: "Puncak", Lat: -6.7800, Lng: 106.9200, Radius: 700, Risk: "medium", City: "bogor", Type: "landslide", Description: "Area pegunungan"},

	// Semarang
	{Name: "Kali Semarang", Lat: -6.9500, Lng: 110.4200, Radius: 600, Risk: "high", City: "semarang", Type: "flood", Description: "Sungai melintasi kota"},
	{Name: "Semarang Utara", Lat: -6.9500, Lng: 110.3500, Radius: 800, Risk: "high", City: "semarang", Type: "flood", Description: "Daerah rob"},
	{Name: "Banjir Kanal", Lat: -7.0000, Lng: 110.4500, Radius: 500, Risk: "medium", City: "semarang", Type: "flood", Description: "Sistem pengendali banjir"},

	// Surabaya
	{Name: "Sungai Brantas", Lat: -7.2500, Lng: 112.7500, Radius: 700, Risk: "medium", City: "surabaya", Type: "flood", Description: "Sungai utama"},
	{Name: "Surabaya Timur", Lat: -7.3000, Lng: 112.8000, Radius: 600, Risk: "medium", City: "surabaya", Type: "flood", Description: "Daerah rendah"},

	// Palembang
	{Name: "Sungai Musi", Lat: -2.9900, Lng: 104.7600, Radius: 900, Risk: "high", City: "palembang", Type: "flood", Description: "Sungai besar"},
	{Name: "Seberang Ilir", Lat: -3.0500, Lng: 104.7000, Radius: 700, Risk: "high", City: "palembang", Type: "flood", Description: "Daerah rob"},

	// Makassar
	{Name: "Sungai Tangka", Lat: -5.1500, Lng: 119.4000, Radius: 500, Risk: "medium", City: "makassar", Type: "flood", Description: "Sungai melintasi kota"},
	{Name: "Makassar Utara", Lat: -5.1000, Lng: 119.3500, Radius: 600, Risk: "medium", City: "makassar", Type: "flood", Description: "Daerah rendah"},

	// Yogyakarta
	{Name: "Kali Code", Lat: -7.8100, Lng: 110.3800, Radius: 500, Risk: "high", City: "yogyakarta", Type: "flood", Description: "Sungai melintasi kota"},
	{Name: "Merapi", Lat: -7.5400, Lng: 110.4200, Radius: 1500, Risk: "high", City: "yogyakarta", Type: "landslide", Description: "Gunungapi aktif"},

	// Medan
	{Name: "Sungai Deli", Lat: 3.6000, Lng: 98.6800, Radius: 500, Risk: "medium", City: "medan", Type: "flood", Description: "Sungai melintasi kota"},

	// Padang
	{Name: "Batangangan", Lat: -0.9500, Lng: 100.3700, Radius: 800, Risk: "high", City: "padang", Type: "landslide", Description: "Daerah curam"},
	{Name: "Pantai Padang", Lat: -0.9800, Lng: 100.3600, Radius: 400, Risk: "medium", City: "padang", Type: "flood", Description: "Daerah tsunami"},
	{Name: "Pantai Barat Sumatera", Lat: -1.0000, Lng: 100.3500, Radius: 400, Risk: "medium", City: "padang", Type: "tsunami", Description: "Zona tsunami"},

	// Pontianak
	{Name: "Sungai Kapuas", Lat: -0.0300, Lng: 109.3400, Radius: 1000, Risk: "high", City: "pontianak", Type: "flood", Description: "Sungai terbesar"},
	{Name: "Pontianak Utara", Lat: 0.0200, Lng: 109.3000, Radius: 600, Risk: "high", City: "pontianak", Type: "flood", Description: "Banjir rob"},

	// Banjarmasin
	{Name: "Sungai Barito", Lat: -3.3500, Lng: 114.5900, Radius: 800, Risk: "high", City: "banjarmasin", Type: "flood", Description: "Sungai besar"},
	{Name: "Banjarmasin Utara", Lat: -3.4500, Lng: 114.6500, Radius: 600, Risk: "medium", City: "banjarmasin", Type: "flood", Description: "Daerah rob"},

	// Bekasi
	{Name: "Sungai Cikeas", Lat: -6.2300, Lng: 106.9800, Radius: 500, Risk: "medium", City: "bekasi", Type: "flood", Description: "Sungai melintasi kota"},

	// Tangerang
	{Name: "Sungai Cisadane", Lat: -6.2500, Lng: 106.6500, Radius: 600, Risk: "high", City: "tangerang", Type: "flood", Description: "Sungai melintasi kota"},
	{Name: "Tangerang Selatan", Lat: -6.3400, Lng: 106.7300, Radius: 500, Risk: "medium", City: "tangerang", Type: "flood", Description: "Daerah rendah"},

	// Depok
	{Name: "Sungai Ciliwung", Lat: -6.4000, Lng: 106.8200, Radius: 700, Risk: "high", City: "depok", Type: "flood", Description: "Sungai melintasi kota"},

	// Malang
	{Name: "Kota Malang Selatan", Lat: -8.0200, Lng: 112.6300, Radius: 500, Risk: "medium", City: "malang", Type: "flood", Description: "Daerah rendah"},
	{Name: "Gunung Arjuno", Lat: -7.9200, Lng: 112.5800, Radius: 800, Risk: "medium", City: "malang", Type: "landslide", Description: "Area pegunungan"},

	// Solo
	{Name: "Sungai Bengawan Solo", Lat: -7.5600, Lng: 110.7500, Radius: 800, Risk: "high", City: "solo", Type: "flood", Description: "Sungai besar"},
	{Name: "Solo Utara", Lat: -7.5500, Lng: 110.8000, Radius: 600, Risk: "medium", City: "solo", Type: "flood", Description: "Daerah rendah"},

	// Denpasar
	{Name: "Denpasar Selatan", Lat: -8.7200, Lng: 115.2000, Radius: 500, Risk: "medium", City: "denpasar", Type: "flood", Description: "Daerah rendah"},
	{Name: "Sungai Badung", Lat: -8.6500, Lng: 115.2300, Radius: 600, Risk: "high", City: "denpasar", Type: "flood", Description: "Sungai melintasi kota"},

	// Pekanbaru
	{Name: "Sungai Siak", Lat: 0.5500, Lng: 101.4500, Radius: 700, Risk: "medium", City: "pekanbaru", Type: "flood", Description: "Sungai melintasi kota"},

	// Jambi
	{Name: "Sungai Batang Hari", Lat: -1.6000, Lng: 103.6000, Radius: 800, Risk: "high", City: "jambi", Type: "flood", Description: "Sungai terbesar di Jambi"},
}

var evacuationPoints = []EvacuationPoint{
	// Jakarta
	{Name: "Stadion Gelora Bung Karno", Lat: -6.2185, Lng: 106.8028, City: "jakarta", Type: "stadium", Capacity: 50000},
	{Name: "Jakarta International Expo", Lat: -6.0655, Lng: 106.8819, City: "jakarta", Type: "exhibition", Capacity: 20000},
	{Name: "Monas", Lat: -6.1754, Lng: 106.8272, City: "jakarta", Type: "monument", Capacity: 10000},

	// Bandung
	{Name: "Gedung Sate", Lat: -6.9146, Lng: 107.6189, City: "bandung", Type: "government", Capacity: 5000},
	{Name: "Lapangan Gasibu", Lat: -6.9175, Lng: 107.6191, City: "bandung", Type: "field", Capacity: 30000},
	{Name: "Sabuga ITB", Lat: -6.8906, Lng: 107.6107, City: "bandung", Type: "building", Capacity: 10000},

	// Surabaya
	{Name: "Gelora Bung Tomo", Lat: -7.2654, Lng: 112.7424, City: "surabaya", Type: "stadium", Capacity: 40000},
	{Name: "Convention Hall", Lat: -7.2894, Lng: 112.7345, City: "surabaya", Type: "exhibition", Capacity: 15000},

	// Semarang
	{Name: "Stadion Jatidiri", Lat: -6.9667, Lng: 110.4208, City: "semarang", Type: "stadium", Capacity: 20000},
	{Name: "Lapangan Simpang Lima", Lat: -6.9822, Lng: 110.3608, City: "semarang", Type: "field", Capacity: 10000},

	// Yogyakarta
	{Name: "Stadion Mandala Krida", Lat: -7.7819, Lng: 110.3727, City: "yogyakarta", Type: "stadium", Capacity: 25000},
	{Name: "Kantor Gubernur DIY", Lat: -7.7956, Lng: 110.3695, City: "yogyakarta", Type: "government", Capacity: 5000},

	// Makassar
	{Name: "Stadion Mattoanging", Lat: -5.1427, Lng: 119.4128, City: "makassar", Type: "stadium", Capacity: 20000},
	{Name: "Rujab Gubernur Sulsel", Lat: -5.1555, Lng: 119.4050, City: "makassar", Type: "government", Capacity: 8000},

	// Palembang
	{Name: "Stadion Gelora Sriwijaya", Lat: -2.9913, Lng: 104.7618, City: "palembang", Type: "stadium", Capacity: 40000},
	{Name: "Jakabaring Sport City", Lat: -2.9756, Lng: 104.7654, City: "palembang", Type: "exhibition", Capacity: 15000},

	// Medan
	{Name: "Stadion Teladan", Lat: 3.5952, Lng: 98.6722, City: "medan", Type: "stadium", Capacity: 20000},
	{Name: "Lapangan Merdeka", Lat: 3.5892, Lng: 98.6735, City: "medan", Type: "field", Capacity: 10000},

	// Bogor
	{Name: "Stadion Pakansari", Lat: -6.5950, Lng: 106.8162, City: "bogor", Type: "stadium", Capacity: 30000},
	{Name: "Lapangan Sempur", Lat: -6.6000, Lng: 106.8200, City: "bogor", Type: "field", Capacity: 10000},

	// Padang
	{Name: "Stadion Haji Agus Salim", Lat: -0.9484, Lng: 100.3617, City: "padang", Type: "stadium", Capacity: 15000},
	{Name: "Lapangan Imam Bonjol", Lat: -0.9500, Lng: 100.3650, City: "padang", Type: "field", Capacity: 8000},

	// Pontianak
	{Name: "Stadion Sultan Syarif Abdurrahman", Lat: -0.0227, Lng: 109.3425, City: "pontianak", Type: "stadium", Capacity: 15000},
	{Name: "Alun-alun Pontianak", Lat: -0.0300, Lng: 109.3400, City: "pontianak", Type: "plaza", Capacity: 10000},

	// Banjarmasin
	{Name: "Stadion 17 Mei", Lat: -3.3194, Lng: 114.5908, City: "banjarmasin", Type: "stadium", Capacity: 20000},
	{Name: "Siring Sungai Martapura", Lat: -3.3500, Lng: 114.6000, City: "banjarmasin", Type: "plaza", Capacity: 5000},

	// Tangerang
	{Name: "Stadion Benteng", Lat: -6.1781, Lng: 106.6299, City: "tangerang", Type: "stadium", Capacity: 15000},

	// Depok
	{Name: "Stadion Merpati", Lat: -6.3000, Lng: 106.8200, City: "depok", Type: "stadium", Capacity: 10000},

	// Bekasi
	{Name: "Stadion Patriot", Lat: -6.2297, Lng: 106.9853, City: "bekasi", Type: "stadium", Capacity: 15000},

	// Solo
	{Name: "Stadion Manahan", Lat: -7.5755, Lng: 110.8243, City: "solo", Type: "stadium", Capacity: 25000},

	// Malang
	{Name: "Stadion Gajayana", Lat: -7.9785, Lng: 112.6311, City: "malang", Type: "stadium", Capacity: 20000},

	// Denpasar
	{Name: "Stadion Ngurah Rai", Lat: -8.6525, Lng: 115.2192, City: "denpasar", Type: "stadium", Capacity: 15000},

	// Pekanbaru
	{Name: "Stadion Utama Riau", Lat: 0.5071, Lng: 101.4478, City: "pekanbaru", Type: "stadium", Capacity: 15000},

	// Jambi
	{Name: "Stadion KONI Jambi", Lat: -1.4852, Lng: 103.6158, City: "jambi", Type: "stadium", Capacity: 10000},
}
