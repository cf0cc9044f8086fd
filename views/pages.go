package views

import (
	"github.com/a-h/templ"
)

// Home is the landing page linking to both sign-up flows.
func Home() templ.Component {
	return Layout("Get started", templ.Raw(
		`<section class="hero"><h1>Ridehail</h1>`+
			`<p>Get a ride in minutes.</p>`+
			`<a class="button" href="/signup">Ride with us</a> `+
			`<a class="button secondary" href="/captain-signup">Drive with us</a>`+
			`</section>`))
}

// RiderSignup posts to /users/register.
func RiderSignup() templ.Component {
	return Layout("Sign up", templ.Raw(
		`<h1>Create a rider account</h1>`+
			`<form id="signup" method="post" data-endpoint="/users/register" data-role="user" data-redirect="/login">`+
			nameFields+credentialFields+
			formStatus+
			`<button type="submit">Create account</button>`+
			`</form>`+
			`<p>Already have an account? <a href="/login">Log in</a></p>`+
			`<p>Want to drive? <a href="/captain-signup">Sign up as a captain</a></p>`))
}

// CaptainSignup posts to /captains/register and collects vehicle details.
func CaptainSignup() templ.Component {
	return Layout("Captain sign up", templ.Raw(
		`<h1>Become a captain</h1>`+
			`<form id="signup" method="post" data-endpoint="/captains/register" data-role="captain" data-redirect="/captain-login">`+
			nameFields+credentialFields+
			`<fieldset><legend>Vehicle</legend>`+
			`<input name="vehicle.color" placeholder="Color" minlength="3" required>`+
			`<input name="vehicle.plate" placeholder="Plate" minlength="3" required>`+
			`<input name="vehicle.capacity" type="number" min="1" placeholder="Capacity" required>`+
			`<select name="vehicle.vehicleType" required>`+
			`<option value="car">Car</option><option value="motorcycle">Motorcycle</option><option value="auto">Auto</option>`+
			`</select></fieldset>`+
			formStatus+
			`<button type="submit">Create captain account</button>`+
			`</form>`+
			`<p>Already a captain? <a href="/captain-login">Log in</a></p>`))
}

// Login renders the login form for the rider ("user") or driver ("captain")
// endpoint.
func Login(role string) templ.Component {
	endpoint, title := "/users/login", "Log in"
	if role == "captain" {
		endpoint, title = "/captains/login", "Captain log in"
	}
	return Layout(title, templ.Raw(
		`<h1>`+templ.EscapeString(title)+`</h1>`+
			`<form id="login" method="post" data-endpoint="`+templ.EscapeString(endpoint)+`" data-role="`+templ.EscapeString(role)+`" data-redirect="/">`+
			credentialFields+
			formStatus+
			`<button type="submit">Log in</button>`+
			`</form>`))
}

const formStatus = `<p role="alert"></p>`

const nameFields = `<input name="fullname.firstname" placeholder="First name" minlength="3" required>` +
	`<input name="fullname.lastname" placeholder="Last name">`

const credentialFields = `<input name="email" type="email" placeholder="email@example.com" required>` +
	`<input name="password" type="password" placeholder="Password" minlength="6" required>`
