package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IvanPareja1/profitness-app-sub003/services"
	"github.com/IvanPareja1/profitness-app-sub003/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	user, err := ctl.users.GetUser(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"user": user}
	if user.WeightKG != nil && user.HeightCM != nil {
		if bmi, err := utils.CalculateBMI(*user.WeightKG, *user.HeightCM); err == nil {
			resp["bmi"] = bmi
			resp["bmi_category"] = utils.BMICategory(bmi)
		}
	}
	c.JSON(http.StatusOK, resp)
}

type ProfileInput struct {
	FullName      *string  `json:"full_name"`
	WeightKG      *float64 `json:"weight_kg"`
	HeightCM      *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	ActivityLevel *string  `json:"activity_level"`
	GoalIntent    *string  `json:"goal_intent"`
}

// UpdateProfile applies partial profile changes. The first save that
// completes the metabolic profile also creates the user's default GoalSet.
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(currentUserID(c), services.ProfileUpdate{
		FullName:      input.FullName,
		WeightKG:      input.WeightKG,
		HeightCM:      input.HeightCM,
		Age:           input.Age,
		Sex:           input.Sex,
		ActivityLevel: input.ActivityLevel,
		GoalIntent:    input.GoalIntent,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
