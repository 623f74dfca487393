package email

// Content templates rendered into the base wrapper. Each works from the same
// fixed variable set: customer name, order number, items, total, tracking
// details, shipping address and related products.

const orderConfirmationTemplate = `
<h2>Thank you for your order{{if .CustomerName}}, {{.CustomerName}}{{end}}!</h2>
<p>We've received your order <strong>#{{.OrderNumber}}</strong> and our atelier is preparing it now.</p>

{{range .Items}}
<div class="item-row">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
    <strong>{{.Name}}</strong> &times; {{.Quantity}} &mdash; {{FormatPence .UnitPrice}}
</div>
{{end}}

<div class="total-row">Total: {{FormatPence .Total}}</div>

{{if .ShippingAddress.Line1}}
<h3>Shipping to</h3>
<p>
    {{.ShippingAddress.Line1}}<br>
    {{if .ShippingAddress.Line2}}{{.ShippingAddress.Line2}}<br>{{end}}
    {{.ShippingAddress.City}} {{.ShippingAddress.Postcode}}<br>
    {{.ShippingAddress.Country}}
</p>
{{end}}

<p>We'll email you again as soon as your jewellery is on its way.</p>
`

const shippingUpdateTemplate = `
<h2>Your order is on its way{{if .CustomerName}}, {{.CustomerName}}{{end}}!</h2>
<p>Order <strong>#{{.OrderNumber}}</strong> has been dispatched.</p>

{{if .TrackingCode}}
<p>Tracking number: <strong>{{.TrackingCode}}</strong></p>
{{if .TrackingURL}}<p style="text-align:center"><a class="button" href="{{.TrackingURL}}">Track Your Parcel</a></p>{{end}}
{{end}}

{{range .Items}}
<div class="item-row">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
    <strong>{{.Name}}</strong> &times; {{.Quantity}}
</div>
{{end}}
`

const arrivingTodayTemplate = `
<h2>Your jewellery arrives today{{if .CustomerName}}, {{.CustomerName}}{{end}}!</h2>
<p>Order <strong>#{{.OrderNumber}}</strong> is out for delivery and should be with you before the end of the day.</p>

{{if .TrackingURL}}<p style="text-align:center"><a class="button" href="{{.TrackingURL}}">Follow the Delivery</a></p>{{end}}
`

const deliveredTemplate = `
<h2>Your order has arrived{{if .CustomerName}}, {{.CustomerName}}{{end}}!</h2>
<p>Order <strong>#{{.OrderNumber}}</strong> was delivered. We hope you love it.</p>
<p>If anything isn't perfect, just reply to this email and we'll put it right.</p>

{{if .RelatedProducts}}
<h3>You may also like</h3>
<div>
{{range .RelatedProducts}}
    <div class="related">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
        <p>{{.Name}}<br>{{FormatPence .Price}}</p>
    </div>
{{end}}
</div>
{{end}}
`

const abandonedCartTemplate = `
<h2>You left something sparkling behind</h2>
<p>Your pieces are still waiting in your bag &mdash; but we can't hold them forever.</p>

{{range .Items}}
<div class="item-row">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
    <strong>{{.Name}}</strong> &times; {{.Quantity}} &mdash; {{FormatPence .UnitPrice}}
</div>
{{end}}

<div class="total-row">Bag total: {{FormatPence .Total}}</div>

<p style="text-align:center"><a class="button" href="{{.CheckoutURL}}">Complete Your Order</a></p>

{{if .RelatedProducts}}
<h3>You may also like</h3>
<div>
{{range .RelatedProducts}}
    <div class="related">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
        <p>{{.Name}}<br>{{FormatPence .Price}}</p>
    </div>
{{end}}
</div>
{{end}}
`
