package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"glowsalon/internal/database"
	"glowsalon/internal/domain"
)

func main() {
	db, err := database.Connect("salon.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (safe order for foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM loyalty_transactions")
	db.Exec("DELETE FROM loyalty_accounts")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM appointment_services")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM favorite_stylists")
	db.Exec("DELETE FROM stylist_specialties")
	db.Exec("DELETE FROM stylists")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM promotions")
	db.Exec("DELETE FROM salon_settings")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@glowsalon.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FirstName:    "Salon",
		LastName:     "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@glowsalon.kz / admin123")

	customers := []domain.User{}
	customerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			FirstName:    fmt.Sprintf("Customer%d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	// ================== CATALOG ==================
	log.Println("Creating categories and services...")

	hair := domain.Category{Name: "Hair"}
	nails := domain.Category{Name: "Nails"}
	beauty := domain.Category{Name: "Beauty"}
	db.Create(&hair)
	db.Create(&nails)
	db.Create(&beauty)

	services := []domain.Service{
		{Name: "Women's Haircut", Price: 8000, DurationMinutes: 60, CategoryID: &hair.ID, IsActive: true},
		{Name: "Men's Haircut", Price: 5000, DurationMinutes: 30, CategoryID: &hair.ID, IsActive: true},
		{Name: "Full Color", Price: 18000, DurationMinutes: 120, CategoryID: &hair.ID, IsActive: true},
		{Name: "Blowout", Price: 6000, DurationMinutes: 45, CategoryID: &hair.ID, IsActive: true},
		{Name: "Gel Manicure", Price: 7000, DurationMinutes: 60, CategoryID: &nails.ID, IsActive: true},
		{Name: "Classic Pedicure", Price: 8000, DurationMinutes: 75, CategoryID: &nails.ID, IsActive: true},
		{Name: "Hydrating Facial", Price: 12000, DurationMinutes: 60, CategoryID: &beauty.ID, IsActive: true},
		{Name: "Brow Shaping", Price: 3500, DurationMinutes: 30, CategoryID: &beauty.ID, IsActive: true},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== STYLISTS ==================
	log.Println("Creating stylists...")

	type stylistSeed struct {
		email       string
		firstName   string
		start, end  string
		specialties []domain.Category
	}
	seeds := []stylistSeed{
		{"aizhan@glowsalon.kz", "Aizhan", "09:00", "18:00", []domain.Category{hair}},
		{"madina@glowsalon.kz", "Madina", "10:00", "19:00", []domain.Category{hair, beauty}},
		{"saule@glowsalon.kz", "Saule", "", "", []domain.Category{nails, beauty}},
	}

	stylists := []domain.Stylist{}
	for i, s := range seeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("stylist123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         domain.RoleStylist,
			FirstName:    s.firstName,
			Phone:        fmt.Sprintf("+7 701 987 65%02d", i+10),
		}
		db.Create(&user)

		stylist := domain.Stylist{
			UserID:            user.ID,
			Bio:               fmt.Sprintf("%s has been with the salon since 2021.", s.firstName),
			WorkingHoursStart: s.start,
			WorkingHoursEnd:   s.end,
			IsAvailable:       true,
			IsFeatured:        i == 0,
		}
		db.Create(&stylist)
		db.Model(&stylist).Association("Specialties").Replace(s.specialties)
		stylists = append(stylists, stylist)
	}

	// ================== APPOINTMENTS ==================
	log.Println("Creating appointments...")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	date := domain.NormalizeDate(tomorrow)

	appt := domain.Appointment{
		CustomerID:      customers[0].ID,
		StylistID:       &stylists[0].ID,
		AppointmentDate: date,
		AppointmentTime: "10:00",
		DurationMinutes: services[0].DurationMinutes,
		TotalPrice:      services[0].Price,
		Status:          domain.AppointmentApproved,
	}
	db.Create(&appt)
	db.Model(&appt).Association("Services").Replace([]domain.Service{services[0]})

	// ================== PROMOTIONS & SETTINGS ==================
	log.Println("Creating promotions and settings...")

	db.Create(&domain.Promotion{
		Name:          "First Visit -20%",
		Description:   "20% off the first booking for new customers",
		PromoType:     domain.PromoFirstTime,
		DiscountValue: 20,
		IsActive:      true,
		ValidFrom:     time.Now().UTC(),
	})

	db.Create(&domain.SalonSetting{
		Key:         "loyalty_points_per_booking",
		Value:       "1",
		Description: "Points earned per currency unit of a completed booking",
	})

	log.Println("Seed complete.")
}
