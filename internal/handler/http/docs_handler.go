package http

import "net/http"

// Docs renders the static API documentation page. No store access.
func Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsHTML))
}

const docsHTML = `<html>
  <head>
    <title>API Documentation</title>
    <style>
      body {
        font-family: Arial, sans-serif;
        margin: 20px;
      }
      h1 {
        color: #333;
      }
      a {
        text-decoration: none;
        color: #0066cc;
      }
      a:hover {
        text-decoration: underline;
      }
      .section {
        margin-bottom: 20px;
      }
    </style>
  </head>
  <body>
    <div class="section">
      <h1>Get All Routes</h1>
      <ul>
        <li>Get All products:- <a href="/products">/products</a></li>
        <li>Get All categories:- <a href="/category/getAll">/category/getAll</a></li>
        <li>Get All companies:- <a href="/company/getAll">/company/getAll</a></li>
        <li>Get a product by Id:- <a href="/products/1">/products/1</a></li>
      </ul>
    </div>

    <div class="section">
      <h1>Combination Routes</h1>
      <ul>
        <li>products from a company(AMZ):- <a href="/company/AMZ/products">/company/AMZ/products</a></li>
        <li>products from a category(Laptop):- <a href="/category/Laptop/products">/category/Laptop/products</a></li>
        <li>products from a company(AMZ) and category(Laptop):- <a href="/company/AMZ/category/Laptop/products">/company/AMZ/category/Laptop/products</a></li>
      </ul>
    </div>

    <div class="section">
      <h1>Filters from Query</h1>
      <p><strong>These filters are available for all the above combination routes:</strong></p>
      <ul>
        <li>availability</li>
        <li>minPrice</li>
        <li>maxPrice</li>
        <li>minRating</li>
        <li>maxRating</li>
        <li>page</li>
        <li>limit</li>
        <li>sortOn
          <ol>
            <li>name</li>
            <li>price</li>
            <li>rating</li>
            <li>discount</li>
          </ol>
        </li>
      </ul>
    </div>

    <div class="section">
      <h4>Examples:</h4>
      <ul>
        <li><a href="/category/Laptop/products?page=2">/category/Laptop/products?page=2</a></li>
        <li><a href="/company/FLP/products?sortOn=price-asc">/company/FLP/products?sortOn=price-asc</a></li>
        <li>
          <a href="/category/Laptop/products?availability=yes&sortOn=discount-asc&minPrice=2000&maxPrice=5000&minRating=3&maxRating=4.5">
            /category/Laptop/products?availability=yes&sortOn=discount-asc&minPrice=2000&maxPrice=5000&minRating=3&maxRating=4.5
          </a>
        </li>
      </ul>
    </div>

    <div class="section">
      <h4>Product Object Structure looks like: </h4>
      <pre>
  {
    "id": 146,
    "availability": "yes",
    "category": "Laptop",
    "company": "AMZ",
    "discount": 10,
    "price": 3000,
    "productName": "Laptop 16",
    "rating": 4.2
  }
      </pre>
    </div>
  </body>
</html>
`
