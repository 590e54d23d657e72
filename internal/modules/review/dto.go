package review

type CreateReviewRequest struct {
	AppointmentID int64  `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}
