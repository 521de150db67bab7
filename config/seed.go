package config

import (
	"github.com/carloangkisann/pantausikecil-sub000/models"

	"gorm.io/gorm"
)

// SeedNutritionalNeeds inserts the per-trimester intake targets once.
// Existing rows are left untouched so re-deploys are idempotent.
func SeedNutritionalNeeds(db *gorm.DB) error {
	needs := []models.NutritionalNeed{
		{
			TrimesterNumber: 1,
			WaterNeedsMl:    1600,
			ProteinNeeds:    61,
			FolicAcidNeeds:  400,
			IronNeeds:       9,
			CalciumNeeds:    1000,
			VitaminDNeeds:   600,
			Omega3Needs:     650,
			FiberNeeds:      35,
			IodineNeeds:     220,
			FatNeeds:        67.3,
			VitaminBNeeds:   0,
		},
		{
			TrimesterNumber: 2,
			WaterNeedsMl:    1600,
			ProteinNeeds:    70,
			FolicAcidNeeds:  400,
			IronNeeds:       18,
			CalciumNeeds:    1000,
			VitaminDNeeds:   600,
			Omega3Needs:     650,
			FiberNeeds:      36,
			IodineNeeds:     220,
			FatNeeds:        67.3,
			VitaminBNeeds:   0,
		},
		{
			TrimesterNumber: 3,
			WaterNeedsMl:    1600,
			ProteinNeeds:    90,
			FolicAcidNeeds:  400,
			IronNeeds:       18,
			CalciumNeeds:    1000,
			VitaminDNeeds:   600,
			Omega3Needs:     650,
			FiberNeeds:      36,
			IodineNeeds:     220,
			FatNeeds:        67.3,
			VitaminBNeeds:   0,
		},
	}

	for i := range needs {
		err := db.
			Where("trimester_number = ?", needs[i].TrimesterNumber).
			FirstOrCreate(&needs[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedActivityCatalog inserts the exercise catalog once, keyed by name.
func SeedActivityCatalog(db *gorm.DB) error {
	activities := []models.Activity{
		{
			ActivityName:      "Jalan Santai",
			Description:       "Berjalan kaki dengan kecepatan santai di area yang aman",
			EstimatedDuration: 30,
			CaloriesPerHour:   200,
			Level:             "Ringan",
			VideoUrl:          "https://example.com/jalan-santai",
			ThumbnailUrl:      "https://example.com/thumb-jalan-santai.jpg",
			Tips:              "Pilih sepatu yang nyaman. Berjalan di permukaan yang rata. Bawa air minum.",
		},
		{
			ActivityName:      "Peregangan Ringan",
			Description:       "Gerakan peregangan lembut untuk mengurangi ketegangan otot",
			EstimatedDuration: 15,
			CaloriesPerHour:   100,
			Level:             "Ringan",
			VideoUrl:          "https://example.com/peregangan",
			ThumbnailUrl:      "https://example.com/thumb-peregangan.jpg",
			Tips:              "Jangan memaksakan gerakan. Tahan peregangan selama 15-30 detik.",
		},
		{
			ActivityName:      "Yoga Prenatal",
			Description:       "Gerakan yoga yang aman dan dirancang khusus untuk ibu hamil",
			EstimatedDuration: 45,
			CaloriesPerHour:   150,
			Level:             "Ringan",
			VideoUrl:          "https://example.com/yoga-prenatal",
			ThumbnailUrl:      "https://example.com/thumb-yoga.jpg",
			Tips:              "Ikuti instruktur berpengalaman. Hindari pose telentang setelah trimester pertama.",
		},
		{
			ActivityName:      "Berenang Santai",
			Description:       "Berenang dengan gerakan lembut di kolam renang",
			EstimatedDuration: 30,
			CaloriesPerHour:   250,
			Level:             "Ringan",
			VideoUrl:          "https://example.com/berenang-santai",
			ThumbnailUrl:      "https://example.com/thumb-berenang.jpg",
			Tips:              "Pastikan kolam bersih. Hindari air yang terlalu panas. Berenang dengan gaya yang nyaman.",
		},
		{
			ActivityName:      "Senam Kegel",
			Description:       "Latihan otot panggul untuk persiapan persalinan",
			EstimatedDuration: 10,
			CaloriesPerHour:   50,
			Level:             "Ringan",
			VideoUrl:          "https://example.com/senam-kegel",
			ThumbnailUrl:      "https://example.com/thumb-kegel.jpg",
			Tips:              "Kontraksikan otot panggul selama 3-5 detik. Lakukan 10-15 repetisi.",
		},
		{
			ActivityName:      "Jalan Cepat",
			Description:       "Berjalan dengan kecepatan sedang untuk kardio ringan",
			EstimatedDuration: 30,
			CaloriesPerHour:   300,
			Level:             "Sedang",
			VideoUrl:          "https://example.com/jalan-cepat",
			ThumbnailUrl:      "https://example.com/thumb-jalan-cepat.jpg",
			Tips:              "Jaga detak jantung tidak terlalu tinggi. Berhenti jika merasa lelah.",
		},
		{
			ActivityName:      "Senam Hamil",
			Description:       "Senam aerobik low impact yang aman untuk ibu hamil",
			EstimatedDuration: 45,
			CaloriesPerHour:   220,
			Level:             "Sedang",
			VideoUrl:          "https://example.com/senam-hamil",
			ThumbnailUrl:      "https://example.com/thumb-senam-hamil.jpg",
			Tips:              "Ikuti instruktur bersertifikat. Minum air yang cukup. Hindari gerakan melompat.",
		},
		{
			ActivityName:      "Bersepeda Statis",
			Description:       "Bersepeda menggunakan sepeda statis dengan intensitas sedang",
			EstimatedDuration: 30,
			CaloriesPerHour:   350,
			Level:             "Sedang",
			VideoUrl:          "https://example.com/sepeda-statis",
			ThumbnailUrl:      "https://example.com/thumb-sepeda.jpg",
			Tips:              "Atur posisi sepeda yang nyaman. Mulai dengan intensitas rendah.",
		},
		{
			ActivityName:      "Pilates Prenatal",
			Description:       "Latihan pilates yang dimodifikasi untuk ibu hamil",
			EstimatedDuration: 45,
			CaloriesPerHour:   200,
			Level:             "Sedang",
			VideoUrl:          "https://example.com/pilates-prenatal",
			ThumbnailUrl:      "https://example.com/thumb-pilates.jpg",
			Tips:              "Fokus pada penguatan core yang aman. Hindari pose telentang lama.",
		},
		{
			ActivityName:      "Jogging Ringan",
			Description:       "Lari santai untuk ibu hamil yang sudah terbiasa berlari",
			EstimatedDuration: 20,
			CaloriesPerHour:   400,
			Level:             "Berat",
			VideoUrl:          "https://example.com/jogging-ringan",
			ThumbnailUrl:      "https://example.com/thumb-jogging.jpg",
			Tips:              "Hanya untuk yang sudah terbiasa berlari sebelum hamil. Kurangi intensitas dari biasanya.",
		},
		{
			ActivityName:      "Latihan Beban Ringan",
			Description:       "Angkat beban ringan dengan fokus pada bentuk yang benar",
			EstimatedDuration: 30,
			CaloriesPerHour:   300,
			Level:             "Berat",
			VideoUrl:          "https://example.com/beban-ringan",
			ThumbnailUrl:      "https://example.com/thumb-beban.jpg",
			Tips:              "Gunakan beban yang lebih ringan dari biasanya. Hindari gerakan yang berbaring telentang.",
		},
	}

	for i := range activities {
		err := db.
			Where("activity_name = ?", activities[i].ActivityName).
			FirstOrCreate(&activities[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedFoodCatalog inserts a starter food catalog once, keyed by name.
func SeedFoodCatalog(db *gorm.DB) error {
	foods := []models.Food{
		{
			FoodName:      "Telur Rebus",
			Description:   "Telur ayam rebus, sumber protein dan kolin yang murah",
			PriceCategory: "Rendah",
			Tips:          "Rebus sampai matang penuh untuk menghindari salmonella.",
			Protein:       12.6,
			FolicAcid:     44,
			Iron:          1.2,
			Calcium:       50,
			VitaminD:      87,
			Omega3:        74,
			Fiber:         0,
			Iodine:        24,
			Fat:           10.6,
			VitaminB:      1.1,
		},
		{
			FoodName:      "Tempe Goreng",
			Description:   "Tempe kedelai goreng, protein nabati sehari-hari",
			PriceCategory: "Rendah",
			Tips:          "Goreng dengan sedikit minyak atau kukus untuk lemak lebih rendah.",
			Protein:       19,
			FolicAcid:     24,
			Iron:          2.7,
			Calcium:       111,
			VitaminD:      0,
			Omega3:        100,
			Fiber:         1.4,
			Iodine:        0,
			Fat:           10.8,
			VitaminB:      0.8,
		},
		{
			FoodName:      "Bayam Bening",
			Description:   "Sayur bayam kuah bening, kaya folat dan zat besi",
			PriceCategory: "Rendah",
			Tips:          "Masak sebentar saja agar folatnya tidak rusak. Jangan dipanaskan ulang.",
			Protein:       2.9,
			FolicAcid:     194,
			Iron:          2.7,
			Calcium:       99,
			VitaminD:      0,
			Omega3:        138,
			Fiber:         2.2,
			Iodine:        12,
			Fat:           0.4,
			VitaminB:      0.6,
		},
		{
			FoodName:      "Ikan Kembung Bakar",
			Description:   "Ikan kembung bakar, omega-3 tinggi dengan harga terjangkau",
			PriceCategory: "Menengah",
			Tips:          "Pastikan matang sempurna. Batasi 2-3 porsi ikan laut per minggu.",
			Protein:       21.4,
			FolicAcid:     16,
			Iron:          1.6,
			Calcium:       66,
			VitaminD:      360,
			Omega3:        2200,
			Fiber:         0,
			Iodine:        83,
			Fat:           10,
			VitaminB:      2.4,
		},
		{
			FoodName:      "Ayam Panggang",
			Description:   "Dada ayam panggang tanpa kulit",
			PriceCategory: "Menengah",
			Tips:          "Buang kulitnya untuk mengurangi lemak jenuh.",
			Protein:       31,
			FolicAcid:     4,
			Iron:          1,
			Calcium:       15,
			VitaminD:      4,
			Omega3:        60,
			Fiber:         0,
			Iodine:        7,
			Fat:           3.6,
			VitaminB:      1.9,
		},
		{
			FoodName:      "Susu Ibu Hamil",
			Description:   "Susu fortifikasi khusus kehamilan",
			PriceCategory: "Menengah",
			Tips:          "Minum 1-2 gelas per hari sebagai pelengkap, bukan pengganti makan.",
			Protein:       9,
			FolicAcid:     300,
			Iron:          9,
			Calcium:       450,
			VitaminD:      200,
			Omega3:        32,
			Fiber:         1,
			Iodine:        75,
			Fat:           4.5,
			VitaminB:      1.5,
		},
		{
			FoodName:      "Ikan Salmon Panggang",
			Description:   "Salmon panggang, sumber DHA untuk perkembangan otak janin",
			PriceCategory: "Tinggi",
			Tips:          "Panggang sampai matang. Pilih salmon segar atau beku yang berkualitas.",
			Protein:       20,
			FolicAcid:     25,
			Iron:          0.8,
			Calcium:       12,
			VitaminD:      526,
			Omega3:        2260,
			Fiber:         0,
			Iodine:        14,
			Fat:           13,
			VitaminB:      3.2,
		},
		{
			FoodName:      "Alpukat",
			Description:   "Buah alpukat segar, lemak sehat dan folat",
			PriceCategory: "Menengah",
			Tips:          "Makan langsung atau campur tanpa gula tambahan.",
			Protein:       2,
			FolicAcid:     81,
			Iron:          0.6,
			Calcium:       12,
			VitaminD:      0,
			Omega3:        110,
			Fiber:         6.7,
			Iodine:        2,
			Fat:           14.7,
			VitaminB:      0.4,
		},
	}

	for i := range foods {
		err := db.
			Where("food_name = ?", foods[i].FoodName).
			FirstOrCreate(&foods[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
